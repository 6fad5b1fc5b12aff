package chartdelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/go-petr/coa-seeder/internal/domain"
	"github.com/go-petr/coa-seeder/internal/middleware"
	"github.com/go-petr/coa-seeder/pkg/errorspkg"
	"github.com/go-petr/coa-seeder/pkg/randompkg"
	"github.com/go-petr/coa-seeder/pkg/tokenpkg"
	"github.com/go-petr/coa-seeder/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("industry", ValidIndustry); err != nil {
			log.Fatalf("v.RegisterValidation(industry) returned error: %v", err)
		}
	}

	os.Exit(m.Run())
}

func newTestServer(t *testing.T, service Service, tokenMaker tokenpkg.Maker) *gin.Engine {
	t.Helper()

	handler := NewHandler(service)

	server := gin.New()
	server.Use(middleware.AuthMiddleware(tokenMaker))
	server.GET("/industries", handler.ListIndustries)
	server.GET("/industries/:key/accounts", handler.Preview)
	server.POST("/projects/:id/chart", handler.Seed)
	server.GET("/projects/:id/accounts", handler.Tree)

	return server
}

func newTestTokenMaker(t *testing.T) tokenpkg.Maker {
	t.Helper()

	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	return tokenMaker
}

func TestSeed(t *testing.T) {
	tokenMaker := newTestTokenMaker(t)
	subject := randompkg.Subject()
	projectID := randompkg.ProjectID()
	authType := middleware.AuthTypeBearer
	duration := time.Minute

	result := domain.SeedResult{
		Defaults:   map[string]int64{"default_treasury": 3, "default_bank": 4},
		CurrencyID: 1,
		Created:    60,
		Skipped:    []domain.SkippedNode{},
	}

	testCases := []struct {
		name           string
		projectID      int64
		requestBody    any
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "OK",
			projectID:   projectID,
			requestBody: gin.H{"industry": "hospital", "currency_id": 1, "company_size": "small"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, subject, duration)
			},
			buildStubs: func(service *MockService) {
				arg := domain.SeedParams{
					ProjectID:   projectID,
					Industry:    "hospital",
					CurrencyID:  1,
					CompanySize: "small",
				}
				service.EXPECT().
					Seed(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(result, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "EmptyBody",
			projectID:   projectID,
			requestBody: gin.H{},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, subject, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Seed(gomock.Any(), gomock.Eq(domain.SeedParams{ProjectID: projectID})).
					Times(1).
					Return(result, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "NoAuthorization",
			projectID:   projectID,
			requestBody: gin.H{},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return nil
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Seed(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name:        "InvalidProjectID",
			projectID:   -1,
			requestBody: gin.H{},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, subject, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Seed(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ID must be at least 1",
		},
		{
			name:        "NoBody",
			projectID:   projectID,
			requestBody: "",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, subject, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Seed(gomock.Any(), gomock.Eq(domain.SeedParams{ProjectID: projectID})).
					Times(1).
					Return(result, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "MixedCaseIndustry",
			projectID:   projectID,
			requestBody: gin.H{"industry": "Hospital"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, subject, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Seed(gomock.Any(), gomock.Eq(domain.SeedParams{ProjectID: projectID, Industry: "Hospital"})).
					Times(1).
					Return(result, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "MalformedIndustry",
			projectID:   projectID,
			requestBody: gin.H{"industry": "real-estate"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, subject, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Seed(gomock.Any(), gomock.Eq(domain.SeedParams{ProjectID: projectID, Industry: "real-estate"})).
					Times(1).
					Return(result, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "NegativeCurrencyID",
			projectID:   projectID,
			requestBody: gin.H{"currency_id": -5},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, subject, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Seed(gomock.Any(), gomock.Eq(domain.SeedParams{ProjectID: projectID, CurrencyID: -5})).
					Times(1).
					Return(result, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "InvalidCompanySize",
			projectID:   projectID,
			requestBody: gin.H{"company_size": "huge"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, subject, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Seed(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "CompanySize must be one of: small medium large enterprise",
		},
		{
			name:        "ValidationError",
			projectID:   projectID,
			requestBody: gin.H{"industry": "hospital"},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, subject, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Seed(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.SeedResult{}, &domain.ValidationError{Code: "1190", Err: domain.ErrDuplicateAccountCode})
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      `duplicate account code: "1190"`,
		},
		{
			name:        "InternalServerError",
			projectID:   projectID,
			requestBody: gin.H{},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, subject, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Seed(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.SeedResult{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Initialize mocks
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)
			server := newTestServer(t, service, tokenMaker)

			tc.buildStubs(service)

			// Send request
			body, ok := tc.requestBody.(string)
			if !ok {
				b, err := json.Marshal(tc.requestBody)
				if err != nil {
					t.Fatalf("Encoding request body error: %v", err)
				}
				body = string(b)
			}

			url := fmt.Sprintf("/projects/%d/chart", tc.projectID)
			req, err := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = tc.setupAuth(t, req); err != nil {
				t.Fatalf("tc.setupAuth(t, %+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			// Test response
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &domain.SeedResult{}}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(&result, res.Data); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	tokenMaker := newTestTokenMaker(t)
	subject := randompkg.Subject()

	nodes := []domain.AccountNode{
		{Code: "1000", NameAr: "الأصول", NameEn: "Assets", Type: domain.AccountTypeAsset, IsGroup: true, Depth: 1},
		{Code: "1100", NameAr: "x", NameEn: "Current Assets", Type: domain.AccountTypeAsset, IsGroup: true, ParentCode: "1000", Depth: 2},
	}

	testCases := []struct {
		name           string
		key            string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			key:  "hospital",
			buildStubs: func(service *MockService) {
				service.EXPECT().Preview(gomock.Eq("hospital")).Times(1).Return(nodes)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "UnknownButWellFormed",
			key:  "space_mining",
			buildStubs: func(service *MockService) {
				service.EXPECT().Preview(gomock.Eq("space_mining")).Times(1).Return(nodes)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "MalformedKey",
			key:  "Bad-Key",
			buildStubs: func(service *MockService) {
				service.EXPECT().Preview(gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Key is not a valid industry key",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)
			server := newTestServer(t, service, tokenMaker)

			tc.buildStubs(service)

			req, err := http.NewRequest(http.MethodGet, "/industries/"+tc.key+"/accounts", nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err := middleware.AddAuthorization(req, tokenMaker, middleware.AuthTypeBearer, subject, time.Minute); err != nil {
				t.Fatalf("middleware.AddAuthorization() returned error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &previewData{}}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(&previewData{nodes}, res.Data); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListIndustries(t *testing.T) {
	tokenMaker := newTestTokenMaker(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	industries := []domain.Industry{
		{Key: "dental", Extension: "healthcare"},
		{Key: "hospital", Extension: "healthcare"},
	}

	service := NewMockService(ctrl)
	service.EXPECT().Industries().Times(1).Return(industries)

	server := newTestServer(t, service, tokenMaker)

	req, err := http.NewRequest(http.MethodGet, "/industries", nil)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	if err := middleware.AddAuthorization(req, tokenMaker, middleware.AuthTypeBearer, randompkg.Subject(), time.Minute); err != nil {
		t.Fatalf("middleware.AddAuthorization() returned error: %v", err)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusOK)
	}

	res := web.Response{Data: &industriesData{}}
	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	if diff := cmp.Diff(&industriesData{industries}, res.Data); diff != "" {
		t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
	}
}

func TestTree(t *testing.T) {
	tokenMaker := newTestTokenMaker(t)
	projectID := randompkg.ProjectID()

	tree := []*domain.AccountTree{
		{
			Account: domain.Account{ID: 1, ProjectID: projectID, Code: "1000", FullCode: "1000", Balance: "0"},
			Total:   "0",
		},
	}

	testCases := []struct {
		name           string
		projectID      int64
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:      "OK",
			projectID: projectID,
			buildStubs: func(service *MockService) {
				service.EXPECT().Tree(gomock.Any(), gomock.Eq(projectID)).Times(1).Return(tree, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:      "InvalidProjectID",
			projectID: 0,
			buildStubs: func(service *MockService) {
				service.EXPECT().Tree(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ID is required",
		},
		{
			name:      "InternalServerError",
			projectID: projectID,
			buildStubs: func(service *MockService) {
				service.EXPECT().Tree(gomock.Any(), gomock.Eq(projectID)).Times(1).Return(nil, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)
			server := newTestServer(t, service, tokenMaker)

			tc.buildStubs(service)

			url := fmt.Sprintf("/projects/%d/accounts", tc.projectID)
			req, err := http.NewRequest(http.MethodGet, url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err := middleware.AddAuthorization(req, tokenMaker, middleware.AuthTypeBearer, randompkg.Subject(), time.Minute); err != nil {
				t.Fatalf("middleware.AddAuthorization() returned error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &treeData{}}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(&treeData{tree}, res.Data); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidIndustry(t *testing.T) {
	type request struct {
		Industry string `validate:"industry"`
	}

	v := validator.New()
	if err := v.RegisterValidation("industry", ValidIndustry); err != nil {
		t.Fatalf("v.RegisterValidation() returned error: %v", err)
	}

	testCases := []struct {
		key  string
		want bool
	}{
		{"hospital", true},
		{"real_estate", true},
		{"1", true},
		{"", false},
		{"Hospital", false},
		{"real-estate", false},
		{"a b", false},
	}

	for _, tc := range testCases {
		err := v.Struct(request{Industry: tc.key})
		if got := err == nil; got != tc.want {
			t.Errorf("ValidIndustry(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}
