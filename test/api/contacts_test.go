//go:build api

package api

import (
	"net/http"
	"testing"

	"compliance-cms/internal/models"
	"compliance-cms/test/api/testserver"
	"compliance-cms/test/fixtures"
	"compliance-cms/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestContacts covers the public contact form and its guarded admin routes.
func TestContacts(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	_, token := testserver.NewAuthHelper(testServer).CreateAdmin(t)

	var created models.Contact

	t.Run("create - public", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/contacts", models.CreateContactRequest{
			Name:    "Asha Rao",
			Email:   "  Asha@Example.com ",
			Mobile:  "+91 98765 43210",
			Message: "What's the fee for BIS & EPR?",
		})

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		testutil.ParseValue(t, w, &created)
		assert.Equal(t, "Asha Rao", created.Name)
		assert.Equal(t, "asha@example.com", created.Email)
		assert.Equal(t, "What's the fee for BIS & EPR?", created.Message)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("create - invalid email", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/contacts", models.CreateContactRequest{
			Name:    "Asha Rao",
			Email:   "not-an-email",
			Mobile:  "+91 98765 43210",
			Message: "Hello",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"email must be a valid email address"}, testutil.ParseAPIResponse(t, w).Messages)
	})

	t.Run("list - requires token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/contacts", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("list - search and paging", func(t *testing.T) {
		testServer.SeedContact(t, fixtures.NewContact().WithName("Zoya").WithEmail("zoya@example.com").BuildPtr())

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/contacts?search=zoya", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var result models.ListResult[models.Contact]
		testutil.ParseValue(t, w, &result)
		assert.Equal(t, int64(1), result.Total)
		require.Len(t, result.Data, 1)
		assert.Equal(t, "Zoya", result.Data[0].Name)

		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/contacts?limit=1&page=2", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		testutil.ParseValue(t, w, &result)
		assert.Equal(t, int64(2), result.Total)
		assert.Equal(t, 2, result.Page)
		assert.Len(t, result.Data, 1)
	})

	t.Run("delete - contact is gone", func(t *testing.T) {
		path := "/api/contacts/" + created.ID.Hex()
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, path, token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, path, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
