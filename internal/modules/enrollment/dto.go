package enrollment

import "time"

type UpsertEnrollmentRequest struct {
	Name      string     `json:"name" binding:"required"`
	CPF       string     `json:"cpf"`
	Phone     string     `json:"phone"`
	BirthDate *time.Time `json:"birth_date"`
}

type CreateTicketRequest struct {
	TicketTypeID int64 `json:"ticket_type_id" binding:"required,gt=0"`
}
