package manager

import (
	"context"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewhaus.com/app/internal/backend"
	"brewhaus.com/app/internal/forms"
	"brewhaus.com/app/internal/http/flash"
	"brewhaus.com/app/internal/http/middleware"
)

type testRecord struct {
	ID       int
	Name     string
	IsActive bool
}

type testPayload struct {
	Name     string
	IsActive bool
}

// testAPI is an in-memory stand-in for the backend resource wrappers.
type testAPI struct {
	records map[int]testRecord
	nextID  int

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	creates int
	updates int
	deletes int
}

func newTestAPI(records ...testRecord) *testAPI {
	api := &testAPI{records: map[int]testRecord{}, nextID: 100}
	for _, r := range records {
		api.records[r.ID] = r
	}
	return api
}

func (a *testAPI) list(context.Context, backend.ListParams) (backend.Page[testRecord], error) {
	if a.listErr != nil {
		return backend.Page[testRecord]{}, a.listErr
	}
	var recs []testRecord
	for _, r := range a.records {
		recs = append(recs, r)
	}
	return backend.Page[testRecord]{Records: recs, PageNumber: 1, TotalPages: 1, TotalRecords: len(recs)}, nil
}

func (a *testAPI) get(_ context.Context, id string) (testRecord, error) {
	if a.getErr != nil {
		return testRecord{}, a.getErr
	}
	n, _ := strconv.Atoi(id)
	r, ok := a.records[n]
	if !ok {
		return testRecord{}, backend.ErrNotFound
	}
	return r, nil
}

func (a *testAPI) create(_ context.Context, in testPayload) (testRecord, error) {
	a.creates++
	if a.createErr != nil {
		return testRecord{}, a.createErr
	}
	a.nextID++
	r := testRecord{ID: a.nextID, Name: in.Name, IsActive: in.IsActive}
	a.records[r.ID] = r
	return r, nil
}

func (a *testAPI) update(_ context.Context, id string, in testPayload) (testRecord, error) {
	a.updates++
	if a.updateErr != nil {
		return testRecord{}, a.updateErr
	}
	n, _ := strconv.Atoi(id)
	r, ok := a.records[n]
	if !ok {
		return testRecord{}, backend.ErrNotFound
	}
	r.Name = in.Name
	r.IsActive = in.IsActive
	a.records[n] = r
	return r, nil
}

func (a *testAPI) delete(_ context.Context, id string) error {
	a.deletes++
	if a.deleteErr != nil {
		return a.deleteErr
	}
	n, _ := strconv.Atoi(id)
	delete(a.records, n)
	return nil
}

const basePath = "/admin/widgets"

func testManager(api *testAPI) (*Manager[testRecord, testPayload], *gin.Engine) {
	gin.SetMode(gin.TestMode)

	cfg := Config[testRecord, testPayload]{
		Name:         "Widget",
		Plural:       "Widgets",
		BasePath:     basePath,
		ListTemplate: "t_list",
		FormTemplate: "t_form",

		List:   api.list,
		Get:    api.get,
		Create: api.create,
		Update: api.update,
		Delete: api.delete,

		ID: func(r testRecord) string { return strconv.Itoa(r.ID) },
		Form: func(bool) *forms.State {
			return forms.New(
				forms.Field{Name: "name", Validators: []forms.Validator{
					forms.Required("Name is required"),
					forms.MinLen(2, "Name is too short"),
				}},
				forms.Field{Name: "isActive"},
			)
		},
		SeedFrom: func(r testRecord) map[string]string {
			return map[string]string{"name": r.Name, "isActive": strconv.FormatBool(r.IsActive)}
		},
		Payload: func(v map[string]string) (testPayload, error) {
			return testPayload{Name: v["name"], IsActive: v["isActive"] == "true"}, nil
		},
		Toggle: func(r testRecord) testPayload {
			return testPayload{Name: r.Name, IsActive: !r.IsActive}
		},
		IsActive: func(r testRecord) bool { return r.IsActive },
	}

	codec := flash.NewCodec([]byte("test-secret"), "bh_flash", false)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := New(cfg, codec, log)

	r := gin.New()
	r.Use(middleware.ErrorHandler(log))
	r.SetHTMLTemplate(template.Must(template.New("").Parse(`
{{define "t_list"}}LIST rows={{len .Rows}} error={{.Error}}{{end}}
{{define "t_form"}}FORM mode={{.Mode}} error={{.Error}} name_err={{.Form.VisibleError "name"}} name={{.Form.Value "name"}}{{end}}
`)))
	m.Register(r.Group(basePath))
	return m, r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListPageRendersRows(t *testing.T) {
	api := newTestAPI(testRecord{ID: 1, Name: "one"}, testRecord{ID: 2, Name: "two"})
	_, r := testManager(api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, basePath, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rows=2")
}

func TestListPageSurvivesBackendFailure(t *testing.T) {
	api := newTestAPI()
	api.listErr = errors.New("connection refused")
	_, r := testManager(api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, basePath, nil))

	// the page still renders, empty, with a notice; nothing is retried
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rows=0")
	assert.Contains(t, w.Body.String(), "Could not load Widgets.")
}

func TestCreateInvalidNeverReachesBackend(t *testing.T) {
	api := newTestAPI()
	_, r := testManager(api)

	w := postForm(r, basePath, url.Values{"name": {""}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "name_err=Name is required")
	assert.Zero(t, api.creates, "an invalid form must not issue a request")
}

func TestCreateSuccessRedirectsWithFlash(t *testing.T) {
	api := newTestAPI()
	_, r := testManager(api)

	w := postForm(r, basePath, url.Values{"name": {"Grinder"}, "isActive": {"true"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, basePath, w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "bh_flash=")
	assert.Equal(t, 1, api.creates)
	require.Len(t, api.records, 1)
	for _, rec := range api.records {
		assert.Equal(t, "Grinder", rec.Name)
		assert.True(t, rec.IsActive)
	}
}

func TestCreateBackendRejectionKeepsFormOpen(t *testing.T) {
	api := newTestAPI()
	api.createErr = &backend.APIError{Status: 409, Message: "Widget name already exists."}
	_, r := testManager(api)

	w := postForm(r, basePath, url.Values{"name": {"Grinder"}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Widget name already exists.", "backend wording surfaces verbatim")
	assert.Contains(t, w.Body.String(), "name=Grinder", "user input is preserved")
	assert.Empty(t, w.Header().Get("Location"), "no redirect on failure")
}

func TestEditPageSeedsForm(t *testing.T) {
	api := newTestAPI(testRecord{ID: 4, Name: "Kettle", IsActive: true})
	_, r := testManager(api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, basePath+"/4/edit", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mode=edit")
	assert.Contains(t, w.Body.String(), "name=Kettle")
	assert.Contains(t, w.Body.String(), "name_err=", "seeded values must not surface errors")
	assert.NotContains(t, w.Body.String(), "name_err=Name")
}

func TestEditPageBackendUnavailable(t *testing.T) {
	api := newTestAPI(testRecord{ID: 4, Name: "Kettle"})
	api.getErr = backend.ErrUnavailable
	_, r := testManager(api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, basePath+"/4/edit", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code, "an open circuit is a gateway problem, not an internal error")
	assert.Contains(t, w.Body.String(), "temporarily unavailable")
}

func TestUpdateSuccess(t *testing.T) {
	api := newTestAPI(testRecord{ID: 4, Name: "Kettle"})
	_, r := testManager(api)

	w := postForm(r, basePath+"/4", url.Values{"name": {"Gooseneck"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, 1, api.updates)
	assert.Equal(t, "Gooseneck", api.records[4].Name)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	api := newTestAPI(testRecord{ID: 9, Name: "Scale"})
	_, r := testManager(api)

	w := postForm(r, basePath+"/9/delete", url.Values{})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Zero(t, api.deletes, "cancel issues no backend call")
	assert.Contains(t, api.records, 9)

	w = postForm(r, basePath+"/9/delete", url.Values{"confirm": {"1"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, 1, api.deletes)
	assert.NotContains(t, api.records, 9)
}

func TestDeleteFailureRedirectsWithError(t *testing.T) {
	api := newTestAPI(testRecord{ID: 9, Name: "Scale"})
	api.deleteErr = &backend.APIError{Status: 409, Message: "Widget is still referenced."}
	_, r := testManager(api)

	w := postForm(r, basePath+"/9/delete", url.Values{"confirm": {"1"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, basePath, w.Header().Get("Location"))
	assert.Contains(t, api.records, 9, "record survives a failed delete")
}

func TestToggleReturnsFlippedFlag(t *testing.T) {
	api := newTestAPI(testRecord{ID: 2, Name: "Banner", IsActive: false})
	_, r := testManager(api)

	req := httptest.NewRequest(http.MethodPost, basePath+"/2/toggle", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"2","isActive":true}`, w.Body.String())
	assert.Equal(t, 1, api.updates)
	assert.True(t, api.records[2].IsActive)
}

func TestToggleFailureReportsError(t *testing.T) {
	api := newTestAPI(testRecord{ID: 2, Name: "Banner", IsActive: true})
	api.updateErr = &backend.APIError{Status: 422, Message: "Cannot deactivate the last banner."}
	_, r := testManager(api)

	req := httptest.NewRequest(http.MethodPost, basePath+"/2/toggle", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot deactivate the last banner.")
	assert.True(t, api.records[2].IsActive, "state is untouched on failure")
}

func TestValidateFieldHonorsTouchGate(t *testing.T) {
	_, r := testManager(newTestAPI())

	body := `{"field":"name","mode":"create","values":{"name":""}}`
	req := httptest.NewRequest(http.MethodPost, basePath+"/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"field":"name","error":"Name is required"}`, w.Body.String())

	// a valid value clears the error
	body = `{"field":"name","mode":"create","values":{"name":"Grinder"}}`
	req = httptest.NewRequest(http.MethodPost, basePath+"/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.JSONEq(t, `{"field":"name","error":""}`, w.Body.String())
}
