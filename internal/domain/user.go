package domain

import (
	"time"

	"github.com/google/uuid"
)

// User представляет пользователя приложения (документ коллекции users).
// Поля профиля опциональны: клиент присылает только те, что заполнены.
type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          *string   `json:"name,omitempty"`
	PhotoURL      *string   `json:"photoURL,omitempty"`
	Role          *string   `json:"role,omitempty"`
	Designation   *string   `json:"designation,omitempty"`
	BankAccountNo *string   `json:"bankAccountNo,omitempty"`
	Salary        *int64    `json:"salary,omitempty"`
	WorkAt        *string   `json:"workAt,omitempty"` // email работодателя, слабая ссылка без проверки
	CreatedAt     time.Time `json:"createdAt"`
}
