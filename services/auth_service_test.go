package services

import (
	"testing"
	"time"

	"campuseats-be/repository"
	"campuseats-be/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type capturingMailer struct {
	to     []string
	bodies []string
}

func (m *capturingMailer) Send(to, subject, body string) error {
	m.to = append(m.to, to)
	m.bodies = append(m.bodies, body)
	return nil
}

func newAuthHarness(t *testing.T) (*AuthService, *capturingMailer) {
	t.Helper()
	db := newTestDB(t)
	mail := &capturingMailer{}
	svc := NewAuthService(repository.NewUserRepository(db), mail, zap.NewNop(), "test-secret", time.Hour)
	return svc, mail
}

func TestSignUpAndSignIn(t *testing.T) {
	svc, _ := newAuthHarness(t)

	user, err := svc.SignUp(" Diner@Example.COM ", "hunter2secret", "Diner", "0912", "A-101")
	require.NoError(t, err)
	assert.Equal(t, "diner@example.com", user.Email)
	assert.NotEqual(t, "hunter2secret", user.Password, "password is stored hashed")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter2secret")))

	// duplicate registration
	_, err = svc.SignUp("diner@example.com", "anotherpass", "Dup", "", "")
	require.Error(t, err)

	token, got, err := svc.SignIn("diner@example.com", "hunter2secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, _, err = svc.SignIn("diner@example.com", "wrongpass")
	require.Error(t, err)
	_, _, err = svc.SignIn("ghost@example.com", "hunter2secret")
	require.Error(t, err)
}

func TestForgotPasswordAntiEnumeration(t *testing.T) {
	svc, mail := newAuthHarness(t)
	_, err := svc.SignUp("diner@example.com", "hunter2secret", "Diner", "", "")
	require.NoError(t, err)

	// unknown and known accounts take the same success path
	require.NoError(t, svc.ForgotPassword("ghost@example.com"))
	require.NoError(t, svc.ForgotPassword("diner@example.com"))

	require.Len(t, mail.to, 1, "only real accounts get mail")
	assert.Equal(t, "diner@example.com", mail.to[0])
}

func TestResetPasswordFlow(t *testing.T) {
	svc, mail := newAuthHarness(t)
	_, err := svc.SignUp("diner@example.com", "hunter2secret", "Diner", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword("diner@example.com"))
	require.Len(t, mail.bodies, 1)

	// the mailed body carries the token after the final colon-space
	body := mail.bodies[0]
	start := len("Use this code to reset your password: ")
	token := body[start : start+36]

	assert.Error(t, svc.ResetPassword(token, "short"), "minimum length enforced")
	require.NoError(t, svc.ResetPassword(token, "brand-new-pass"))

	_, _, err = svc.SignIn("diner@example.com", "brand-new-pass")
	require.NoError(t, err)
	_, _, err = svc.SignIn("diner@example.com", "hunter2secret")
	require.Error(t, err)

	// tokens are single use
	assert.Error(t, svc.ResetPassword(token, "yet-another-pass"))
	assert.Error(t, svc.ResetPassword("not-a-token", "whatever-pass"))
}
