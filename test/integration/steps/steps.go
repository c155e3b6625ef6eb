package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/lifetrack/backend/config"
	"github.com/lifetrack/backend/internal/infra/dependency"
	"github.com/lifetrack/backend/internal/integration/persistence/model"
	"github.com/lifetrack/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var serverInit sync.Once
var testDB *mock.Db
var testAPI *mock.ApiMock
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)

		// Outbound provider double: the email worker delivers reset
		// emails against this server instead of the real Resend API.
		testAPI = mock.NewApiServer()
		testAPI.Start()
		testAPI.SetResponse(-1, "POST", "/emails", 200, map[string]any{"id": "email-test-id"})
		_ = os.Setenv("RESEND_API_KEY", "test-api-key")
		_ = os.Setenv("RESEND_BASE_URL", testAPI.GetUrl())
		_ = os.Setenv("EMAIL_WORKER_POLL_INTERVAL", "100ms")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("lifetrack", map[string]any{
			"users":                  &model.UserModel{},
			"refresh_tokens":         &model.RefreshTokenModel{},
			"password_reset_tokens":  &model.PasswordResetTokenModel{},
			"categories":             &model.CategoryModel{},
			"observations":           &model.ObservationModel{},
			"routines":               &model.RoutineModel{},
			"routine_completions":    &model.RoutineCompletionModel{},
			"tasks":                  &model.TaskModel{},
			"transactions":           &model.TransactionModel{},
			"recurring_transactions": &model.RecurringTransactionModel{},
			"exercise_days":          &model.ExerciseDayModel{},
			"exercise_notes":         &model.ExerciseNoteModel{},
			"settings":               &model.SettingsModel{},
			"email_queue":            &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^an expired password reset token exists$`, test.anExpiredPasswordResetTokenExists)

	// Category and observation setup steps
	ctx.Given(`^a category exists with name "([^"]*)" and kind "([^"]*)"$`, test.aCategoryExistsWithNameAndKind)
	ctx.Given(`^a category exists with name "([^"]*)" kind "([^"]*)" goal "([^"]*)" value (\d+(?:\.\d+)?)$`, test.aCategoryExistsWithGoal)
	ctx.Given(`^an observation exists on "([^"]*)" with value (\d+(?:\.\d+)?)$`, test.anObservationExistsOnWithValue)

	// Routine and task setup steps
	ctx.Given(`^a routine exists at "([^"]*)" for "([^"]*)"$`, test.aRoutineExistsAtFor)
	ctx.Given(`^a task exists on "([^"]*)" titled "([^"]*)"$`, test.aTaskExistsOnTitled)

	// Transaction setup steps
	ctx.Given(`^a transaction exists on "([^"]*)" of type "([^"]*)" with amount "([^"]*)"$`, test.aTransactionExistsOnOfTypeWithAmount)

	// Exercise setup steps
	ctx.Given(`^an exercise day is logged on "([^"]*)"$`, test.anExerciseDayIsLoggedOn)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Outbound email provider assertions
	ctx.Then(`^the email provider should receive a message for "([^"]*)"$`, test.theEmailProviderShouldReceiveAMessageFor)
}

// theEmailProviderShouldReceiveAMessageFor waits for the background email
// worker to deliver a queued message addressed to the given recipient.
func (t *testContext) theEmailProviderShouldReceiveAMessageFor(email string) error {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		for i := 0; i < 100; i++ {
			body := testAPI.GetRequestBody("POST", "/emails", i)
			if body == nil {
				break
			}
			if recipients, ok := body["to"].([]any); ok {
				for _, recipient := range recipients {
					if recipient == email {
						return nil
					}
				}
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("email provider received no message addressed to %s", email)
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			injector, err := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis())
			if err != nil {
				panic(fmt.Sprintf("failed to wire test dependencies: %v", err))
			}
			engine := injector.Router.Setup("test")

			go injector.EmailWorker.Start(context.Background())

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	accessTokenString, err := t.signToken("access", now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshTokenString, err := t.signToken("refresh", now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) signToken(tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "lifetrack",
		"sub":        t.currentUserID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}

	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) aCategoryExistsWithNameAndKind(name, kind string) error {
	return t.createCategory(name, kind, "none", 0)
}

func (t *testContext) aCategoryExistsWithGoal(name, kind, goalType string, goalValue float64) error {
	return t.createCategory(name, kind, goalType, goalValue)
}

func (t *testContext) createCategory(name, kind, goalType string, goalValue float64) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		UserID:    t.currentUserID,
		Name:      name,
		Kind:      kind,
		Color:     "#6366F1",
		GoalType:  goalType,
		GoalValue: goalValue,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(categoryModel).Error
}

func (t *testContext) anObservationExistsOnWithValue(date string, value float64) error {
	now := time.Now().UTC()
	observationModel := &model.ObservationModel{
		ID:         uuid.New(),
		UserID:     t.currentUserID,
		CategoryID: t.currentCategoryID,
		Date:       date,
		Value:      value,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return t.db.DbConn.Create(observationModel).Error
}

func (t *testContext) aRoutineExistsAtFor(timeOfDay, activity string) error {
	routineID := uuid.New()
	t.currentRoutineID = routineID

	now := time.Now().UTC()
	routineModel := &model.RoutineModel{
		ID:        routineID,
		UserID:    t.currentUserID,
		Time:      timeOfDay,
		Activity:  activity,
		Weekdays:  pq.StringArray{},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(routineModel).Error
}

func (t *testContext) aTaskExistsOnTitled(date, title string) error {
	taskID := uuid.New()
	t.currentTaskID = taskID

	now := time.Now().UTC()
	taskModel := &model.TaskModel{
		ID:        taskID,
		UserID:    t.currentUserID,
		Date:      date,
		Title:     title,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(taskModel).Error
}

func (t *testContext) aTransactionExistsOnOfTypeWithAmount(date, txnType, amount string) error {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	transactionID := uuid.New()
	t.lastCreatedID = transactionID

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:        transactionID,
		UserID:    t.currentUserID,
		Type:      txnType,
		Category:  "General",
		Amount:    parsedAmount,
		Currency:  "USD",
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) anExerciseDayIsLoggedOn(date string) error {
	now := time.Now().UTC()
	dayModel := &model.ExerciseDayModel{
		ID:        uuid.New(),
		UserID:    t.currentUserID,
		Date:      date,
		Completed: true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(dayModel).Error
}
