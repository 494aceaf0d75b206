package model

import (
	"strings"
	"time"
)

// Category — категория одежды.
type Category string

const (
	CategoryTops        Category = "tops"
	CategoryBottoms     Category = "bottoms"
	CategoryOuterwear   Category = "outerwear"
	CategoryFootwear    Category = "footwear"
	CategoryAccessories Category = "accessories"
	CategoryOther       Category = "other"
)

// Valid сообщает, входит ли значение в допустимый набор.
func (c Category) Valid() bool {
	switch c {
	case CategoryTops, CategoryBottoms, CategoryOuterwear, CategoryFootwear, CategoryAccessories, CategoryOther:
		return true
	}
	return false
}

// Condition — состояние вещи.
type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "like-new"
	ConditionUsed    Condition = "used"
	ConditionWorn    Condition = "worn"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionUsed, ConditionWorn:
		return true
	}
	return false
}

// ParseCondition приводит пользовательский ввод к Condition.
// Старые клиенты присылают "like new" через пробел.
func ParseCondition(s string) Condition {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "like new" {
		return ConditionLikeNew
	}
	return Condition(s)
}

// ParseCategory приводит пользовательский ввод к Category.
func ParseCategory(s string) Category {
	return Category(strings.ToLower(strings.TrimSpace(s)))
}

// Item — вещь, выставленная пользователем на обмен.
type Item struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index" json:"user"` // владелец, не меняется после создания

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	ImageURL    string    `gorm:"not null" json:"imageUrl"`
	Category    Category  `gorm:"not null;default:other;index" json:"category"`
	Condition   Condition `gorm:"not null;default:used" json:"condition"`

	// Owner заполняется только при выдаче списка всех вещей.
	Owner *Identity `gorm:"-" json:"owner,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ItemPatch — частичное обновление вещи.
// nil означает "поле не передано", непустой указатель перезаписывает значение.
type ItemPatch struct {
	Title       *string
	Description *string
	ImageURL    *string
	Category    *Category
	Condition   *Condition
}

// Empty сообщает, что в патче нет ни одного поля.
func (p ItemPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.ImageURL == nil && p.Category == nil && p.Condition == nil
}

// Columns возвращает набор колонок для UPDATE по заданным полям.
// Строки обрезаются так же, как при создании вещи.
func (p ItemPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Title != nil {
		cols["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		cols["description"] = strings.TrimSpace(*p.Description)
	}
	if p.ImageURL != nil {
		cols["image_url"] = strings.TrimSpace(*p.ImageURL)
	}
	if p.Category != nil {
		cols["category"] = string(*p.Category)
	}
	if p.Condition != nil {
		cols["condition"] = string(*p.Condition)
	}
	return cols
}
