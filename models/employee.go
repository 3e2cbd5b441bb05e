package models

// Employee is a member of an agency's staff. The unique key is the CIN
// (national identity card number).
//
// The optional sub-profiles are role-dependent: User is present only
// for operators (they own a login account), Transporter only for
// transporters (it carries the assigned vehicle).
type Employee struct {
	// CIN is the unique national identity card number.
	CIN string `json:"empCin"`

	// Name is the family name.
	Name string `json:"nom_emp"`

	// Surname is the given name.
	Surname string `json:"prenom_emp"`

	Phone   string `json:"emp_phone"`
	Address string `json:"emp_adresse"`

	// Agency is the employing agency, when included by the backend.
	Agency *Agency `json:"agence,omitempty"`

	// Role is the employee's role row.
	Role *RoleEntity `json:"role,omitempty"`

	// User is the login account, present only for OPERATEUR employees.
	User *User `json:"utilisateur,omitempty"`

	// Transporter is the transporter specialization, present only for
	// TRANSPORTEUR employees.
	Transporter *Transporter `json:"transporteur,omitempty"`
}

// Transporter is the employee specialization authorized to carry
// deliveries. It mirrors the employee identity fields under the
// transporter-specific wire names.
type Transporter struct {
	// CIN is the transporter's identity card number, equal to the
	// underlying employee CIN.
	CIN string `json:"trs_Cin"`

	Name    string `json:"nom_trs"`
	Surname string `json:"prenom_trs"`
	Phone   string `json:"trs_phone"`
	Address string `json:"trs_adress"`

	// Agency is the employing agency, when included.
	Agency *Agency `json:"agenceTransporteur,omitempty"`

	// Vehicle is the assigned vehicle, if any.
	Vehicle *Vehicle `json:"vehiculeTransporteur,omitempty"`
}

// CreateEmployeeRequest is the employee part of create/update calls.
type CreateEmployeeRequest struct {
	CIN      string `json:"empCin" validate:"required"`
	Name     string `json:"nom_emp" validate:"required"`
	Surname  string `json:"prenom_emp" validate:"required"`
	Phone    string `json:"emp_phone" validate:"required"`
	Address  string `json:"emp_adresse" validate:"required"`
	AgencyID int64  `json:"id_agence" validate:"required"`
	RoleID   int64  `json:"id_role" validate:"required"`
}

// CreateUserRequest is the account part of an operator creation call.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"mot_passe" validate:"required,min=6"`
	RoleID   int64  `json:"id_role" validate:"required"`
}

// CreateEmployeeWithUserRequest is the combined body consumed by
// POST /utilisateur/create-with-employe.
type CreateEmployeeWithUserRequest struct {
	Employee CreateEmployeeRequest `json:"employe"`
	User     CreateUserRequest     `json:"utilisateur"`
}
