package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/foodbridge/food-donation-api/internal/constants"
	"github.com/foodbridge/food-donation-api/internal/database"
	"github.com/foodbridge/food-donation-api/internal/dto"
	"github.com/foodbridge/food-donation-api/internal/models"
	"github.com/foodbridge/food-donation-api/internal/repository"
	"github.com/foodbridge/food-donation-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// RequestHandlerTestSuite defines the test suite for RequestHandler
type RequestHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *RequestHandler
}

// SetupTest runs before each test
func (suite *RequestHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Donor{},
		&models.NGO{},
		&models.Donation{},
		&models.Request{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	requestRepo := repository.NewRequestRepository(suite.db)
	suite.handler = NewRequestHandler(services.NewRequestService(requestRepo))

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *RequestHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *RequestHandlerTestSuite) createTestDonor(username string) *models.Donor {
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
		Role:         models.RoleDonor,
	}
	suite.db.Create(user)

	donor := &models.Donor{
		UserID: user.ID,
		Name:   username,
	}
	suite.db.Create(donor)
	return donor
}

func (suite *RequestHandlerTestSuite) createTestNGO(username string) *models.NGO {
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
		Role:         models.RoleNGO,
	}
	suite.db.Create(user)

	ngo := &models.NGO{
		UserID: user.ID,
		Name:   username,
	}
	suite.db.Create(ngo)
	return ngo
}

func (suite *RequestHandlerTestSuite) createTestRequest(ngoID uint64, foodType string, quantity float64) *models.Request {
	request := &models.Request{
		NGOID:       ngoID,
		FoodType:    foodType,
		Quantity:    quantity,
		RequestDate: time.Now(),
		Status:      models.RequestStatusPending,
	}
	suite.db.Create(request)
	return request
}

func (suite *RequestHandlerTestSuite) createContext(method, url string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

// TestCreateRequest tests that a new request starts Pending and dated today
func (suite *RequestHandlerTestSuite) TestCreateRequest() {
	ngo := suite.createTestNGO("foodbank")

	body, _ := json.Marshal(map[string]interface{}{
		"food_type": "Rice",
		"quantity":  20,
	})

	c, w := suite.createContext("POST", "/api/requests", body)
	c.Set(constants.ContextKeyNGO, *ngo)

	suite.handler.CreateRequest(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response dto.RequestDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), models.RequestStatusPending, response.Status)
	assert.Equal(suite.T(), ngo.ID, response.NGOID)
	assert.Nil(suite.T(), response.DonationID)
}

// TestCreateRequest_InvalidQuantity tests quantity validation
func (suite *RequestHandlerTestSuite) TestCreateRequest_InvalidQuantity() {
	ngo := suite.createTestNGO("foodbank")

	body, _ := json.Marshal(map[string]interface{}{
		"food_type": "Rice",
		"quantity":  -5,
	})

	c, w := suite.createContext("POST", "/api/requests", body)
	c.Set(constants.ContextKeyNGO, *ngo)

	suite.handler.CreateRequest(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var count int64
	suite.db.Model(&models.Request{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

// TestFulfillRequest tests the paired donation-insert + request-update
func (suite *RequestHandlerTestSuite) TestFulfillRequest() {
	donor := suite.createTestDonor("alice")
	ngo := suite.createTestNGO("foodbank")
	request := suite.createTestRequest(ngo.ID, "Rice", 20)

	body, _ := json.Marshal(map[string]interface{}{
		"food_type":     "Rice",
		"donation_date": "2024-01-01",
		"expiry_date":   "2024-02-01",
		"quantity":      20,
	})

	c, w := suite.createContext("POST", "/api/requests/1/fulfill", body)
	c.Set(constants.ContextKeyDonor, *donor)
	c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(request.ID, 10)}}

	suite.handler.FulfillRequest(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.RequestDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), models.RequestStatusFulfilled, response.Status)
	suite.Require().NotNil(response.DonationID)

	// The linked donation was born Assigned to the requesting NGO
	var donation models.Donation
	suite.Require().NoError(suite.db.First(&donation, *response.DonationID).Error)
	assert.Equal(suite.T(), models.DonationStatusAssigned, donation.Status)
	suite.Require().NotNil(donation.NGOID)
	assert.Equal(suite.T(), ngo.ID, *donation.NGOID)
	assert.Equal(suite.T(), donor.ID, donation.DonorID)
	assert.Equal(suite.T(), float64(20), donation.Quantity)
}

// TestFulfillRequest_AlreadyFulfilled tests that a second fulfillment leaves no trace
func (suite *RequestHandlerTestSuite) TestFulfillRequest_AlreadyFulfilled() {
	donor := suite.createTestDonor("alice")
	ngo := suite.createTestNGO("foodbank")
	request := suite.createTestRequest(ngo.ID, "Rice", 20)

	body, _ := json.Marshal(map[string]interface{}{
		"food_type":     "Rice",
		"donation_date": "2024-01-01",
		"expiry_date":   "2024-02-01",
		"quantity":      20,
	})

	c, w := suite.createContext("POST", "/api/requests/1/fulfill", body)
	c.Set(constants.ContextKeyDonor, *donor)
	c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(request.ID, 10)}}
	suite.handler.FulfillRequest(c)
	suite.Require().Equal(http.StatusOK, w.Code)

	c, w = suite.createContext("POST", "/api/requests/1/fulfill", body)
	c.Set(constants.ContextKeyDonor, *donor)
	c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(request.ID, 10)}}
	suite.handler.FulfillRequest(c)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	// Exactly one donation exists; the rolled-back insert left nothing
	var count int64
	suite.db.Model(&models.Donation{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

// TestFulfillRequest_InvalidDateRange tests that a violating pair changes nothing
func (suite *RequestHandlerTestSuite) TestFulfillRequest_InvalidDateRange() {
	donor := suite.createTestDonor("alice")
	ngo := suite.createTestNGO("foodbank")
	request := suite.createTestRequest(ngo.ID, "Rice", 20)

	body, _ := json.Marshal(map[string]interface{}{
		"food_type":     "Rice",
		"donation_date": "2024-02-01",
		"expiry_date":   "2024-01-01",
		"quantity":      20,
	})

	c, w := suite.createContext("POST", "/api/requests/1/fulfill", body)
	c.Set(constants.ContextKeyDonor, *donor)
	c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(request.ID, 10)}}

	suite.handler.FulfillRequest(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var stored models.Request
	suite.db.First(&stored, request.ID)
	assert.Equal(suite.T(), models.RequestStatusPending, stored.Status)
	assert.Nil(suite.T(), stored.DonationID)

	var count int64
	suite.db.Model(&models.Donation{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

// TestFulfillRequest_NotFound tests fulfilling an unknown request
func (suite *RequestHandlerTestSuite) TestFulfillRequest_NotFound() {
	donor := suite.createTestDonor("alice")

	body, _ := json.Marshal(map[string]interface{}{
		"food_type":     "Rice",
		"donation_date": "2024-01-01",
		"expiry_date":   "2024-02-01",
		"quantity":      20,
	})

	c, w := suite.createContext("POST", "/api/requests/999/fulfill", body)
	c.Set(constants.ContextKeyDonor, *donor)
	c.Params = gin.Params{{Key: "id", Value: "999"}}

	suite.handler.FulfillRequest(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestListNGORequests tests that an NGO only sees its own requests
func (suite *RequestHandlerTestSuite) TestListNGORequests() {
	foodbank := suite.createTestNGO("foodbank")
	shelter := suite.createTestNGO("shelter")

	suite.createTestRequest(foodbank.ID, "Rice", 20)
	suite.createTestRequest(foodbank.ID, "Bread", 5)
	suite.createTestRequest(shelter.ID, "Milk", 10)

	c, w := suite.createContext("GET", "/api/requests", nil)
	c.Set(constants.ContextKeyNGO, *foodbank)

	suite.handler.ListNGORequests(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.RequestListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(suite.T(), response.Requests, 2)
	for _, r := range response.Requests {
		assert.Equal(suite.T(), foodbank.ID, r.NGOID)
	}
}

// TestListOpenRequests tests that only pending requests are offered to donors
func (suite *RequestHandlerTestSuite) TestListOpenRequests() {
	foodbank := suite.createTestNGO("foodbank")
	shelter := suite.createTestNGO("shelter")

	open := suite.createTestRequest(foodbank.ID, "Rice", 20)
	fulfilled := suite.createTestRequest(shelter.ID, "Milk", 10)
	suite.db.Model(fulfilled).Update("status", models.RequestStatusFulfilled)

	c, w := suite.createContext("GET", "/api/requests/open", nil)

	suite.handler.ListOpenRequests(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.RequestListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Requests, 1)
	assert.Equal(suite.T(), open.ID, response.Requests[0].ID)
	assert.Equal(suite.T(), "foodbank", response.Requests[0].NGOName)
}

func TestRequestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}
