package store

import (
	"time"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

type authorModel struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"size:50;not null"`
	Lastname    string    `gorm:"size:50;not null"`
	DateCreated time.Time `gorm:"not null;autoCreateTime"`
}

func (authorModel) TableName() string { return "authors" }

type quoteModel struct {
	ID          uint64       `gorm:"primaryKey;autoIncrement"`
	Text        string       `gorm:"type:text;not null"`
	AuthorID    *uint64      `gorm:"index"`
	Author      *authorModel `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Active      bool         `gorm:"not null"`
	DateCreated time.Time    `gorm:"not null;autoCreateTime;index"`
}

func (quoteModel) TableName() string { return "quotes" }

type userModel struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement"`
	Username     string     `gorm:"size:150;not null;uniqueIndex"`
	Email        string     `gorm:"size:254;not null"`
	DateOfBirth  *time.Time `gorm:"type:date"`
	PasswordHash string     `gorm:"size:128;not null"`
	IsSuperuser  bool       `gorm:"not null"`
	IsActive     bool       `gorm:"not null"`
	DateJoined   time.Time  `gorm:"not null;autoCreateTime"`
	LastLogin    *time.Time
}

func (userModel) TableName() string { return "users" }

func toAuthor(m *authorModel) *domain.Author {
	if m == nil {
		return nil
	}

	return &domain.Author{
		ID:          m.ID,
		Name:        m.Name,
		Lastname:    m.Lastname,
		DateCreated: m.DateCreated,
	}
}

func fromAuthor(a *domain.Author) *authorModel {
	return &authorModel{
		ID:          a.ID,
		Name:        a.Name,
		Lastname:    a.Lastname,
		DateCreated: a.DateCreated,
	}
}

func toQuote(m *quoteModel) *domain.Quote {
	return &domain.Quote{
		ID:          m.ID,
		Text:        m.Text,
		AuthorID:    m.AuthorID,
		Active:      m.Active,
		DateCreated: m.DateCreated,
		Author:      toAuthor(m.Author),
	}
}

func fromQuote(q *domain.Quote) *quoteModel {
	return &quoteModel{
		ID:          q.ID,
		Text:        q.Text,
		AuthorID:    q.AuthorID,
		Active:      q.Active,
		DateCreated: q.DateCreated,
	}
}

func toUser(m *userModel) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		DateOfBirth:  m.DateOfBirth,
		PasswordHash: m.PasswordHash,
		IsSuperuser:  m.IsSuperuser,
		IsActive:     m.IsActive,
		DateJoined:   m.DateJoined,
		LastLogin:    m.LastLogin,
	}
}

func fromUser(u *domain.User) *userModel {
	return &userModel{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		DateOfBirth:  u.DateOfBirth,
		PasswordHash: u.PasswordHash,
		IsSuperuser:  u.IsSuperuser,
		IsActive:     u.IsActive,
		DateJoined:   u.DateJoined,
		LastLogin:    u.LastLogin,
	}
}

func mapSlice[M any, D any](models []M, conv func(*M) *D) []D {
	out := make([]D, len(models))
	for i := range models {
		out[i] = *conv(&models[i])
	}

	return out
}
