package model

import "time"

// SwapStatus — статус предложения обмена.
type SwapStatus string

const (
	SwapPending  SwapStatus = "pending"
	SwapAccepted SwapStatus = "accepted"
	SwapRejected SwapStatus = "rejected"
)

// Terminal сообщает, что из статуса нет переходов.
func (s SwapStatus) Terminal() bool {
	return s == SwapAccepted || s == SwapRejected
}

// Swap — предложение обменять offered-вещь инициатора на requested-вещь другого пользователя.
// Получатель отдельно не хранится: это владелец RequestedItem.
type Swap struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	RequesterID int64  `gorm:"not null;index" json:"requesterId"`

	OfferedItemID   string `gorm:"type:uuid;not null;index" json:"offeredItemId"`
	RequestedItemID string `gorm:"type:uuid;not null;index" json:"requestedItemId"`

	Status SwapStatus `gorm:"not null;default:pending;index" json:"status"`

	// Связи, подгружаются через Preload
	Requester     *User `gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE" json:"-"`
	OfferedItem   *Item `gorm:"foreignKey:OfferedItemID;constraint:OnDelete:CASCADE" json:"offeredItem,omitempty"`
	RequestedItem *Item `gorm:"foreignKey:RequestedItemID;constraint:OnDelete:CASCADE" json:"requestedItem,omitempty"`

	// RequesterInfo заполняется из Requester перед отдачей клиенту.
	RequesterInfo *Identity `gorm:"-" json:"requester,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ReceiverID возвращает владельца запрошенной вещи (0, если вещь не подгружена).
func (s *Swap) ReceiverID() int64 {
	if s.RequestedItem == nil {
		return 0
	}
	return s.RequestedItem.UserID
}
