package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"mentorlink_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UniqueEmail returns an address that no other test run can collide with.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CreateUser inserts a user directly, hashing PasswordHash when it still
// holds the raw password.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}
	user.Email = strings.ToLower(user.Email)

	if user.Skills == nil {
		user.SetSkills([]string{})
	}
	if user.Interests == nil {
		user.SetInterests([]string{})
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("failed to create user %s: %v", user.Email, result.Error)
		return result.Error
	}
	return nil
}

// RegisterUser registers through the API and returns the issued token and
// the user's id.
func RegisterUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, string) {
	body := map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     string(role),
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "registration should succeed, got: "+bodyStr)

	var response struct {
		ID    string `json:"id"`
		Token string `json:"token"`
	}
	err := json.Unmarshal([]byte(bodyStr), &response)
	require.NoError(t, err)
	require.NotEmpty(t, response.Token)
	require.NotEmpty(t, response.ID)

	return response.Token, response.ID
}

// CreateAndLoginUser creates a user directly and logs in through the API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	err := CreateUser(t, ts.DB, user)
	require.NoError(t, err)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	require.NoError(t, err)
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginMentor registers a mentor with a unique email.
func CreateAndLoginMentor(t *testing.T, ts *TestServer) (string, *models.User) {
	return CreateAndLoginUser(t, ts, "Test Mentor", UniqueEmail("mentor"), "password123", models.UserRoleMentor)
}

// CreateAndLoginMentee registers a mentee with a unique email.
func CreateAndLoginMentee(t *testing.T, ts *TestServer) (string, *models.User) {
	return CreateAndLoginUser(t, ts, "Test Mentee", UniqueEmail("mentee"), "password123", models.UserRoleMentee)
}

// SendConnectionRequest opens a pending connection and returns its id.
func SendConnectionRequest(t *testing.T, ts *TestServer, token, recipientID string) string {
	body := map[string]interface{}{"recipientId": recipientID}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/connections", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "connection request should succeed, got: "+bodyStr)

	var response struct {
		Connection struct {
			ID string `json:"id"`
		} `json:"connection"`
	}
	err := json.Unmarshal([]byte(bodyStr), &response)
	require.NoError(t, err)
	require.NotEmpty(t, response.Connection.ID)

	return response.Connection.ID
}
