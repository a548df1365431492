package domain

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Role          UserRole `json:"role"`
	JoinDate      string   `json:"joinDate"`
	TotalBookings int      `json:"totalBookings"`
	Phone         string   `json:"phone,omitempty"`
	Address       string   `json:"address,omitempty"`
}
