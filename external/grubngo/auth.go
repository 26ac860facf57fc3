package grubngo

import "context"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest matches the backend's RegisterRequest schema. Restaurant
// address fields exist server-side but the customer client never sends them.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// LoginResult is returned by both login and register.
type LoginResult struct {
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Message   string `json:"message,omitempty"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	err := c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (LoginResult, error) {
	var out LoginResult
	err := c.post(ctx, "/auth/register", req, &out)
	return out, err
}
