package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQuestionReorderEndpoint(t *testing.T) {
	token := registerAndLogin(t, "reorder-owner", "123456")

	form := createForm(t, token, map[string]interface{}{
		"title": "Ordered",
		"slug":  "reorder-form",
		"questions": []map[string]interface{}{
			{"question_text": "First", "question_type": "text", "order": 1},
			{"question_text": "Second", "question_type": "text", "order": 2},
			{"question_text": "Third", "question_type": "text", "order": 3},
		},
	})
	require.Len(t, form.Questions, 3)

	ids := []string{form.Questions[2].ID, form.Questions[0].ID, form.Questions[1].ID}
	w := doRequest(t, "PATCH", "/api/forms/reorder-form/questions/reorder", token, "",
		map[string]interface{}{"order": ids}, http.StatusOK)

	var reordered []struct {
		ID           string `json:"id"`
		QuestionText string `json:"question_text"`
		Order        uint   `json:"order"`
	}
	decodeBody(t, w, &reordered)
	require.Equal(t, "Third", reordered[0].QuestionText)
	require.Equal(t, uint(1), reordered[0].Order)
	require.Equal(t, "Second", reordered[2].QuestionText)
	require.Equal(t, uint(3), reordered[2].Order)

	// an incomplete id set is rejected
	doRequest(t, "PATCH", "/api/forms/reorder-form/questions/reorder", token, "",
		map[string]interface{}{"order": ids[:2]}, http.StatusBadRequest)
}

func TestSettingsAllowList(t *testing.T) {
	token := registerAndLogin(t, "settings-owner", "123456")

	createForm(t, token, map[string]interface{}{
		"title": "Settings",
		"slug":  "settings-form",
	})

	doRequest(t, "PATCH", "/api/forms/settings-form/settings", token, "",
		map[string]interface{}{"is_active": false}, http.StatusOK)

	// title is not a settings field
	w := doRequest(t, "PATCH", "/api/forms/settings-form/settings", token, "",
		map[string]interface{}{"title": "sneaky"}, http.StatusBadRequest)
	require.Contains(t, w.Body.String(), "Field title not allowed")

	// the deactivated form stops accepting submissions
	doRequest(t, "POST", "/api/forms/settings-form/submissions", "", "203.0.113.70",
		map[string]interface{}{}, http.StatusGone)
}

func TestAccessCodeFlow(t *testing.T) {
	token := registerAndLogin(t, "access-owner", "123456")

	createForm(t, token, map[string]interface{}{
		"title":       "Protected",
		"slug":        "protected-form",
		"access_code": "open-sesame",
	})

	doRequest(t, "POST", "/api/forms/protected-form/verify-access", "", "",
		map[string]string{"code": "open-sesame"}, http.StatusOK)
	doRequest(t, "POST", "/api/forms/protected-form/verify-access", "", "",
		map[string]string{"code": "wrong"}, http.StatusForbidden)
}

func TestClientSchemaAndValidateEndpoint(t *testing.T) {
	token := registerAndLogin(t, "schema-owner", "123456")

	form := createForm(t, token, map[string]interface{}{
		"title": "Schema",
		"slug":  "schema-form",
		"questions": []map[string]interface{}{
			{"question_text": "Pick", "question_type": "radio", "order": 1, "options": []string{"a", "b"}},
		},
	})

	w := doRequest(t, "GET", "/api/forms/schema-form/client-schema", "", "", nil, http.StatusOK)
	var schema struct {
		Slug      string `json:"slug"`
		Questions []struct {
			ID           string `json:"id"`
			QuestionType string `json:"question_type"`
		} `json:"questions"`
	}
	decodeBody(t, w, &schema)
	require.Equal(t, "schema-form", schema.Slug)
	require.Len(t, schema.Questions, 1)

	// standalone validation persists nothing
	w = doRequest(t, "POST", "/api/forms/schema-form/questions/"+form.Questions[0].ID+"/validate", "", "",
		map[string]string{"answer_text": "b"}, http.StatusOK)
	require.Contains(t, w.Body.String(), `"valid":true`)

	w = doRequest(t, "POST", "/api/forms/schema-form/questions/"+form.Questions[0].ID+"/validate", "", "",
		map[string]string{"answer_text": "z"}, http.StatusOK)
	require.Contains(t, w.Body.String(), `"valid":false`)

	w = doRequest(t, "GET", "/api/forms/schema-form/submissions", token, "", nil, http.StatusOK)
	var stored []map[string]interface{}
	decodeBody(t, w, &stored)
	require.Empty(t, stored)
}

func TestExpiredFormAnswersGone(t *testing.T) {
	token := registerAndLogin(t, "expired-owner", "123456")

	past := time.Now().Add(-time.Hour).Format(time.RFC3339)
	createForm(t, token, map[string]interface{}{
		"title":      "Expired",
		"slug":       "expired-form",
		"expires_at": past,
	})

	doRequest(t, "GET", "/api/forms/expired-form", "", "", nil, http.StatusGone)
	doRequest(t, "POST", "/api/forms/expired-form/submissions", "", "203.0.113.80",
		map[string]interface{}{}, http.StatusGone)
}

func TestDuplicateEndpoint(t *testing.T) {
	token := registerAndLogin(t, "dup-owner", "123456")

	createForm(t, token, map[string]interface{}{
		"title": "Original",
		"slug":  "dup-source",
		"questions": []map[string]interface{}{
			{"question_text": "Name", "question_type": "text", "order": 1},
		},
	})

	w := doRequest(t, "POST", "/api/forms/dup-source/duplicate", token, "", nil, http.StatusCreated)
	var dup struct {
		Title string `json:"title"`
		Slug  string `json:"slug"`
	}
	decodeBody(t, w, &dup)
	require.Equal(t, "Original (copy)", dup.Title)
	require.Equal(t, "dup-source-copy", dup.Slug)
}

func TestOwnershipIsEnforced(t *testing.T) {
	owner := registerAndLogin(t, "owner-a", "123456")
	stranger := registerAndLogin(t, "owner-b", "123456")

	createForm(t, owner, map[string]interface{}{
		"title": "Private",
		"slug":  "private-form",
	})

	// non-owners still get the render view, but nothing owner-only
	doRequest(t, "GET", "/api/forms/private-form", stranger, "", nil, http.StatusOK)
	doRequest(t, "DELETE", "/api/forms/private-form", stranger, "", nil, http.StatusForbidden)
	doRequest(t, "PUT", "/api/forms/private-form", stranger, "",
		map[string]string{"title": "hijacked"}, http.StatusForbidden)
	doRequest(t, "GET", "/api/forms/private-form/submissions", stranger, "", nil, http.StatusForbidden)
}
