package admin

import (
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"brewhaus.com/app/internal/backend"
	"brewhaus.com/app/internal/http/flash"
	"brewhaus.com/app/internal/http/middleware"
)

func productsTestRouter(t *testing.T, backendHandler http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backendHandler)
	t.Cleanup(srv.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := backend.NewClient(backend.Config{BaseURL: srv.URL, Timeout: 5 * time.Second, Logger: log})
	codec := flash.NewCodec([]byte("test-secret"), "bh_flash", false)

	r := gin.New()
	r.Use(middleware.ErrorHandler(log))
	r.SetHTMLTemplate(template.Must(template.New("").Parse(`
{{define "admin_products_list"}}PRODUCTS rows={{len .Rows}} error={{.Error}} next={{.Pager.NextURL}}{{end}}
`)))

	m := NewProductsManager(client, codec, log)
	m.Register(r.Group("/admin/products"))
	return r
}

const productsPage = `{"data":{"records":[
	{"id":1,"name":"House Blend","categoryId":3,"isActive":true,"variants":[]},
	{"id":2,"name":"Dark Roast","categoryId":3,"isActive":true,"variants":[]}
],"totalPages":2,"totalRecords":12,"currentPage":1}}`

func TestProductsListCategoryFilter(t *testing.T) {
	var gotPath string
	r := productsTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		assert.Equal(t, "1", req.URL.Query().Get("PageNumber"))
		io.WriteString(w, productsPage)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/products?category=3", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/Product/category/3", gotPath)
	assert.Contains(t, w.Body.String(), "rows=2")
	// the filter survives page navigation
	assert.Contains(t, w.Body.String(), "category=3")
	assert.Contains(t, w.Body.String(), "page=2")
}

func TestProductsListWithoutFilter(t *testing.T) {
	var gotPath string
	r := productsTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		io.WriteString(w, productsPage)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/products", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/Product", gotPath)
}
