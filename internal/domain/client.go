package domain

import "time"

type Address struct {
	Street     string
	Number     string
	Complement string
	City       string
	State      string
	ZipCode    string
}

type Client struct {
	ID        string
	Name      string
	Email     string
	Document  string
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}
