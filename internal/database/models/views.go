package models

// OrganizationView is an organization with its members and linodes, as returned by the listing endpoint
type OrganizationView struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Users   []UserSummary   `json:"users"`
	Linodes []LinodeSummary `json:"linodes"`
}

// UserView is a user with every organization they belong to and the linodes those organizations own
type UserView struct {
	ID      int64                 `json:"id"`
	Email   string                `json:"email"`
	Orgs    []OrganizationSummary `json:"orgs"`
	Linodes []UserLinode          `json:"linodes"`
}

type UserSummary struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type LinodeSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type OrganizationSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserLinode carries the owning organization so clients can group a user's linodes
type UserLinode struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	OrgID int64  `json:"org"`
}
