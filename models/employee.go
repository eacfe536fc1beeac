package models

// Employee is an ingested staff member joined against the contacts roster.
// Name (the first name as it appears in the grid) is the stable identity;
// ID is only a 1-based display ordinal over the sorted name list and shifts
// whenever the roster changes between loads.
type Employee struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	FullName     string `json:"fullName,omitempty"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Availability string `json:"availability,omitempty"`
	Photo        string `json:"photo"`
}

// Contact holds the roster fields merged into an Employee.
type Contact struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Availability string `json:"availability"`
	Photo        string `json:"photo"`
}
