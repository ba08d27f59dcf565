// internal/handlers/handlers_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/wooshcafe/woosh-backend/internal/config"
	"github.com/wooshcafe/woosh-backend/internal/middleware"
	"github.com/wooshcafe/woosh-backend/internal/services"
	"github.com/wooshcafe/woosh-backend/internal/store"
)

// scriptedGenerator drives the generation endpoints from tests.
type scriptedGenerator struct {
	unconfigured bool
	fail         bool
}

func (g *scriptedGenerator) Configured() bool { return !g.unconfigured }

func (g *scriptedGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if g.fail {
		return "", errors.New("scripted failure")
	}
	return "生成的文案", nil
}

func (g *scriptedGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	if g.fail {
		return nil, errors.New("scripted failure")
	}
	return []byte{0x89, 0x50, 0x4E, 0x47}, nil
}

func (g *scriptedGenerator) GenerateStructured(ctx context.Context, prompt string, out interface{}) error {
	if g.fail {
		return errors.New("scripted failure")
	}
	return json.Unmarshal([]byte(`{"positive_points":["服務好"],"negative_points":[],"advice":"保持下去"}`), out)
}

type APITestSuite struct {
	suite.Suite
	router    *gin.Engine
	st        *store.Store
	generator *scriptedGenerator
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.AI.RequestTimeout = 5
	cfg.Weather.BaseURL = "http://127.0.0.1:1" // unreachable, exercises the fallback

	suite.st = store.New()
	suite.generator = &scriptedGenerator{}

	storageService, err := services.NewStorageService(cfg)
	suite.Require().NoError(err)
	weatherService := services.NewWeatherService(cfg)

	orderService := services.NewOrderService(suite.st.Cart, suite.st.Orders)
	ideaService := services.NewIdeaService(suite.st.Ideas, suite.generator, storageService)
	feedbackService := services.NewFeedbackService(suite.st.Feedbacks, suite.generator)
	inventoryService := services.NewInventoryService(suite.st.Inventory)
	goalService := services.NewGoalService(suite.st.Goals)
	socialService := services.NewSocialService(suite.st.Posts, suite.generator)
	dashboardService := services.NewDashboardService(weatherService, suite.st.Orders, suite.st.Inventory, suite.st.Goals)

	cartHandler := NewCartHandler(orderService)
	orderHandler := NewOrderHandler(orderService)
	ideaHandler := NewIdeaHandler(ideaService)
	feedbackHandler := NewFeedbackHandler(feedbackService)
	inventoryHandler := NewInventoryHandler(inventoryService)
	goalHandler := NewGoalHandler(goalService)
	socialHandler := NewSocialHandler(socialService)
	dashboardHandler := NewDashboardHandler(dashboardService)

	r := gin.New()
	r.Use(middleware.I18nMiddleware("en"))

	v1 := r.Group("/v1")
	{
		v1.GET("/cart", cartHandler.GetCart)
		v1.POST("/cart/items", cartHandler.AddItem)
		v1.DELETE("/cart/items/:name", cartHandler.RemoveItem)
		v1.POST("/cart/checkout", cartHandler.Checkout)
		v1.GET("/orders", orderHandler.GetOrders)
		v1.GET("/orders/export", orderHandler.ExportCSV)
		v1.PUT("/orders/:id/status", orderHandler.UpdateStatus)
		v1.GET("/ideas", ideaHandler.GetIdeas)
		v1.POST("/ideas", ideaHandler.CreateIdea)
		v1.PUT("/ideas/:id/stage", ideaHandler.UpdateStage)
		v1.GET("/feedbacks", feedbackHandler.GetFeedbacks)
		v1.POST("/feedbacks", feedbackHandler.CreateFeedback)
		v1.POST("/feedbacks/sync", feedbackHandler.SyncReviews)
		v1.GET("/inventory", inventoryHandler.GetItems)
		v1.GET("/inventory/export", inventoryHandler.ExportCSV)
		v1.POST("/inventory/import", inventoryHandler.ImportCSV)
		v1.POST("/inventory/:id/restock", inventoryHandler.Restock)
		v1.GET("/goals", goalHandler.GetGoals)
		v1.POST("/goals", goalHandler.CreateGoal)
		v1.GET("/posts", socialHandler.GetPosts)
		v1.POST("/posts", socialHandler.PublishPost)
		v1.POST("/posts/draft", socialHandler.DraftPost)
		v1.GET("/dashboard/summary", dashboardHandler.GetSummary)
	}

	suite.router = r
}

func (suite *APITestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (suite *APITestSuite) TestCartFlow() {
	// Two lattes merge into one line
	w := suite.request("POST", "/v1/cart/items", gin.H{"name": "拿鐵", "unit_price": 120})
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	w = suite.request("POST", "/v1/cart/items", gin.H{"name": "拿鐵", "unit_price": 120})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/v1/cart", nil)
	response := suite.decode(w)
	data := response["data"].(map[string]interface{})
	lines := data["lines"].([]interface{})
	suite.Require().Len(lines, 1)
	assert.Equal(suite.T(), 2.0, lines[0].(map[string]interface{})["quantity"])
	assert.Equal(suite.T(), 240.0, data["total"])

	// Checkout places a pending order and clears the cart
	w = suite.request("POST", "/v1/cart/checkout", nil)
	suite.Require().Equal(http.StatusCreated, w.Code)
	response = suite.decode(w)
	order := response["data"].(map[string]interface{})["order"].(map[string]interface{})
	assert.Equal(suite.T(), "pending", order["status"])
	assert.Equal(suite.T(), 240.0, order["total"])

	w = suite.request("GET", "/v1/cart", nil)
	response = suite.decode(w)
	assert.Empty(suite.T(), response["data"].(map[string]interface{})["lines"])

	w = suite.request("GET", "/v1/orders", nil)
	response = suite.decode(w)
	orders := response["data"].([]interface{})
	suite.Require().NotEmpty(orders)
	assert.Equal(suite.T(), order["id"], orders[0].(map[string]interface{})["id"])
}

func (suite *APITestSuite) TestCartAddUnpricedItemIsNoOp() {
	w := suite.request("POST", "/v1/cart/items", gin.H{"name": "季節限定甜點"})
	suite.Require().Equal(http.StatusOK, w.Code)

	response := suite.decode(w)
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), false, data["added"])
	assert.Empty(suite.T(), data["lines"])
}

func (suite *APITestSuite) TestCheckoutEmptyCart() {
	w := suite.request("POST", "/v1/cart/checkout", nil)
	suite.Require().Equal(http.StatusUnprocessableEntity, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), false, response["success"])
	assert.Equal(suite.T(), "EMPTY_CART", response["error"].(map[string]interface{})["code"])
}

func (suite *APITestSuite) TestRemoveCartItem() {
	suite.request("POST", "/v1/cart/items", gin.H{"name": "可頌", "unit_price": 80})
	suite.request("POST", "/v1/cart/items", gin.H{"name": "可頌", "unit_price": 80})

	w := suite.request("DELETE", "/v1/cart/items/可頌", nil)
	response := suite.decode(w)
	lines := response["data"].(map[string]interface{})["lines"].([]interface{})
	suite.Require().Len(lines, 1)
	assert.Equal(suite.T(), 1.0, lines[0].(map[string]interface{})["quantity"])

	w = suite.request("DELETE", "/v1/cart/items/可頌", nil)
	response = suite.decode(w)
	assert.Empty(suite.T(), response["data"].(map[string]interface{})["lines"])
}

func (suite *APITestSuite) TestCreateIdea() {
	w := suite.request("POST", "/v1/ideas", gin.H{"name": "黑糖珍珠拿鐵", "notes": "冬季限定"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	response := suite.decode(w)
	idea := response["data"].(map[string]interface{})["idea"].(map[string]interface{})
	assert.Equal(suite.T(), "idea", idea["stage"])
	assert.Equal(suite.T(), "生成的文案", idea["recipe"])
	assert.True(suite.T(), strings.HasPrefix(idea["image_ref"].(string), "data:image/png;base64,"))
}

func (suite *APITestSuite) TestCreateIdeaUnconfigured() {
	suite.generator.unconfigured = true

	w := suite.request("POST", "/v1/ideas", gin.H{"name": "黑糖珍珠拿鐵"})
	suite.Require().Equal(http.StatusServiceUnavailable, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), "NOT_CONFIGURED", response["error"].(map[string]interface{})["code"])
	// No record created; the seeded three remain
	assert.Equal(suite.T(), 3, suite.st.Ideas.Len())
}

func (suite *APITestSuite) TestCreateIdeaTotalFailure() {
	suite.generator.fail = true

	w := suite.request("POST", "/v1/ideas", gin.H{"name": "黑糖珍珠拿鐵"})
	suite.Require().Equal(http.StatusBadGateway, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), "GENERATION_FAILED", response["error"].(map[string]interface{})["code"])
	assert.Equal(suite.T(), 3, suite.st.Ideas.Len())
}

func (suite *APITestSuite) TestCreateIdeaValidation() {
	w := suite.request("POST", "/v1/ideas", gin.H{"notes": "沒有名字"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestIdeaStageMove() {
	w := suite.request("PUT", "/v1/ideas/idea-1/stage", gin.H{"stage": "launch"})
	suite.Require().Equal(http.StatusOK, w.Code)

	response := suite.decode(w)
	idea := response["data"].(map[string]interface{})["idea"].(map[string]interface{})
	assert.Equal(suite.T(), "launch", idea["stage"])

	w = suite.request("PUT", "/v1/ideas/idea-1/stage", gin.H{"stage": "shipped"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.request("PUT", "/v1/ideas/missing/stage", gin.H{"stage": "launch"})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestCreateFeedback() {
	w := suite.request("POST", "/v1/feedbacks", gin.H{"customer": "王小姐", "rating": 4, "comment": "服務很親切"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	response := suite.decode(w)
	record := response["data"].(map[string]interface{})["feedback"].(map[string]interface{})
	assert.Equal(suite.T(), "保持下去", record["advice"])

	// Newest entry sits on top of the list
	w = suite.request("GET", "/v1/feedbacks", nil)
	response = suite.decode(w)
	feedbacks := response["data"].([]interface{})
	assert.Equal(suite.T(), "王小姐", feedbacks[0].(map[string]interface{})["customer"])
}

func (suite *APITestSuite) TestCreateFeedbackStillCommitsOnAnalysisFailure() {
	suite.generator.fail = true

	w := suite.request("POST", "/v1/feedbacks", gin.H{"customer": "王小姐", "comment": "服務很親切"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	response := suite.decode(w)
	record := response["data"].(map[string]interface{})["feedback"].(map[string]interface{})
	assert.Equal(suite.T(), services.AdviceUnavailable, record["advice"])
	assert.Equal(suite.T(), 4, suite.st.Feedbacks.Len())
}

func (suite *APITestSuite) TestCreateFeedbackValidation() {
	w := suite.request("POST", "/v1/feedbacks", gin.H{"rating": 5})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestSyncReviews() {
	w := suite.request("POST", "/v1/feedbacks/sync", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), 3.0, response["data"].(map[string]interface{})["imported"])
	assert.Equal(suite.T(), 6, suite.st.Feedbacks.Len())
}

func (suite *APITestSuite) TestRestock() {
	// Empty body uses the critical item's suggested quantity
	w := suite.request("POST", "/v1/inventory/1/restock", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), 10.0, response["data"].(map[string]interface{})["quantity"])

	w = suite.request("POST", "/v1/inventory/missing/restock", gin.H{"quantity": 3})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestInventoryExportImportRoundTrip() {
	w := suite.request("GET", "/v1/inventory/export", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Header().Get("Content-Type"), "text/csv")

	req, _ := http.NewRequest("POST", "/v1/inventory/import", bytes.NewReader(w.Body.Bytes()))
	imported := httptest.NewRecorder()
	suite.router.ServeHTTP(imported, req)
	suite.Require().Equal(http.StatusOK, imported.Code)

	response := suite.decode(imported)
	assert.Equal(suite.T(), 5.0, response["data"].(map[string]interface{})["imported"])
	assert.Len(suite.T(), suite.st.Inventory.List(), 10)
}

func (suite *APITestSuite) TestGoals() {
	w := suite.request("GET", "/v1/goals", nil)
	response := suite.decode(w)
	assert.Len(suite.T(), response["data"].(map[string]interface{})["goals"], 3)

	w = suite.request("POST", "/v1/goals", gin.H{"title": "外帶杯減量", "target": 500, "current": 120, "unit": "個"})
	suite.Require().Equal(http.StatusCreated, w.Code)
	assert.Equal(suite.T(), 4, len(suite.st.Goals.List()))

	// Target is required
	w = suite.request("POST", "/v1/goals", gin.H{"title": "沒有目標值"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestDraftPost() {
	w := suite.request("POST", "/v1/posts/draft", gin.H{"idea": "週年慶買一送一"})
	suite.Require().Equal(http.StatusOK, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), "生成的文案", response["data"].(map[string]interface{})["draft"])
	// Drafting does not publish
	assert.Len(suite.T(), suite.st.Posts.List(), 2)
}

func (suite *APITestSuite) TestPublishPost() {
	w := suite.request("POST", "/v1/posts", gin.H{"content": "新品上市，快來試試！", "platform": "FB"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	posts := suite.st.Posts.List()
	suite.Require().Len(posts, 3)
	assert.Equal(suite.T(), "新品上市，快來試試！", posts[0].Content)
	assert.Equal(suite.T(), "FB", string(posts[0].Platform))

	// Content is required
	w = suite.request("POST", "/v1/posts", gin.H{"platform": "IG"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestDraftPostUnconfigured() {
	suite.generator.unconfigured = true

	w := suite.request("POST", "/v1/posts/draft", gin.H{"idea": "週年慶買一送一"})
	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)
}

func (suite *APITestSuite) TestDashboardSummary() {
	w := suite.request("GET", "/v1/dashboard/summary", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	response := suite.decode(w)
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(suite.T(), data["quote"])
	assert.Equal(suite.T(), 28450.0, data["total_revenue"])

	weather := data["weather"].(map[string]interface{})
	assert.Equal(suite.T(), true, weather["fallback"])
	assert.Equal(suite.T(), 24.0, weather["temperature"])

	// Seeded stock has two critical and one warning item
	assert.Len(suite.T(), data["critical_inventory"], 2)
	assert.Len(suite.T(), data["warning_inventory"], 1)
}

func (suite *APITestSuite) TestOrdersExportCSV() {
	w := suite.request("GET", "/v1/orders/export", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(suite.T(), w.Header().Get("Content-Disposition"), "woosh_orders.csv")
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
