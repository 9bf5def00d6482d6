package api

import (
	"context"
	"net/http"

	"taskcli/internal/service"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn implements service.Auth. No credential is attached: this is the
// call that obtains one.
func (c *Client) SignIn(ctx context.Context, email, password string) (service.Session, error) {
	var sess service.Session
	err := c.public().do(ctx, http.MethodPost, "/auth/signin", signInRequest{Email: email, Password: password}, &sess)
	if err != nil {
		return service.Session{}, err
	}
	return sess, nil
}

// SignUp implements service.Auth.
func (c *Client) SignUp(ctx context.Context, name, email, password string) (service.Session, error) {
	var sess service.Session
	err := c.public().do(ctx, http.MethodPost, "/auth/signup", signUpRequest{Name: name, Email: email, Password: password}, &sess)
	if err != nil {
		return service.Session{}, err
	}
	return sess, nil
}

// SignOut implements service.Auth. It revokes the current session using
// the stored credential; the backend answers 204.
func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/signout", nil, nil)
}
