package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoleEmployee — единственная роль, с которой принимается запись о членстве
const RoleEmployee = "employee"

// TeamMembership представляет запись о членстве сотрудника в команде
// работодателя (документ коллекции team_members). Связи между коллекциями —
// денормализованные email-строки, внешних ключей нет.
type TeamMembership struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`     // email участника
	UserEmail   string    `json:"userEmail"` // email работодателя (HR)
	Role        string    `json:"role"`
	MemberName  *string   `json:"memberName,omitempty"`
	PhotoURL    *string   `json:"photoURL,omitempty"`
	CompanyName *string   `json:"companyName,omitempty"`
	JoinedAt    time.Time `json:"joinedAt"`
}
