package models

import "time"

// TokenPair — пара токенов, выдаваемая при входе и обновлении.
//
// Оба токена — самодостаточные подписанные JWT; различаются только временем
// жизни. Сервер не хранит их и не умеет отзывать до истечения срока.
type TokenPair struct {
	// AccessToken — короткоживущий JWT для авторизации запросов.
	AccessToken string
	// RefreshToken — долгоживущий JWT для выпуска новой пары.
	RefreshToken string
	// AccessExpiresAt — момент истечения access-токена (UTC).
	AccessExpiresAt time.Time
}
