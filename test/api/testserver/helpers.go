//go:build api

package testserver

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"testing"

	"compliance-cms/internal/models"
	"compliance-cms/test/testutil"

	"github.com/stretchr/testify/require"
)

// Default admin credentials used by CreateAdmin.
const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "password123"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// CreateUser creates a user through the service layer, bypassing the guarded route.
func (ah *AuthHelper) CreateUser(t *testing.T, email, password string) *models.User {
	t.Helper()

	user, err := ah.server.UserService.CreateUser(context.Background(), &models.CreateUserRequest{
		Email:    email,
		Password: password,
	})
	require.NoError(t, err, "failed to create user")
	return user
}

// Login logs in a user and returns the access token.
func (ah *AuthHelper) Login(t *testing.T, email, password string) string {
	t.Helper()

	req := models.LoginRequest{Email: email, Password: password}
	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	var resp models.LoginResponse
	testutil.ParseValue(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken, "access_token should be set")
	return resp.AccessToken
}

// CreateAdmin creates the default admin and returns an access token for it.
func (ah *AuthHelper) CreateAdmin(t *testing.T) (*models.User, string) {
	t.Helper()

	user := ah.CreateUser(t, AdminEmail, AdminPassword)
	return user, ah.Login(t, AdminEmail, AdminPassword)
}

// PNG returns an encoded width x height PNG.
func PNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// SeedPage inserts a page directly into the database (bypasses API).
func (ts *TestServer) SeedPage(t *testing.T, page *models.Page) *models.Page {
	t.Helper()
	require.NoError(t, ts.PageRepo.Create(context.Background(), page), "failed to seed page")
	return page
}

// SeedBlog inserts a blog directly into the database (bypasses API).
func (ts *TestServer) SeedBlog(t *testing.T, blog *models.Blog) *models.Blog {
	t.Helper()
	require.NoError(t, ts.BlogRepo.Create(context.Background(), blog), "failed to seed blog")
	return blog
}

// SeedProject inserts a project directly into the database (bypasses API).
func (ts *TestServer) SeedProject(t *testing.T, project *models.Project) *models.Project {
	t.Helper()
	require.NoError(t, ts.ProjectRepo.Create(context.Background(), project), "failed to seed project")
	return project
}

// SeedContact inserts a contact directly into the database (bypasses API).
func (ts *TestServer) SeedContact(t *testing.T, contact *models.Contact) *models.Contact {
	t.Helper()
	require.NoError(t, ts.ContactRepo.Create(context.Background(), contact), "failed to seed contact")
	return contact
}
