package notes

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/notehub/notehub/internal/models"
)

const testSecret = "test-secret"

// fakeBackend is an in-memory notes API.
type fakeBackend struct {
	notes      map[string]models.Note
	accounts   map[string]string
	requestIDs []string
	failBody   string
	tokenTTL   time.Duration
	noteHits   int
	nextID     int
	failWith   int
	omitUser   bool
	mu         sync.Mutex
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	b := &fakeBackend{
		notes:    make(map[string]models.Note),
		accounts: map[string]string{"ada@example.com": "secret"},
		tokenTTL: time.Hour,
	}

	engine := gin.New()
	engine.Use(b.recordRequestID)

	api := engine.Group("/api")
	api.POST("/users/register", b.register)
	api.POST("/users/login", b.login)

	notes := api.Group("/notes")
	notes.Use(b.auth)
	notes.GET("", b.list)
	notes.POST("", b.create)
	notes.PUT("/:id", b.update)
	notes.DELETE("/:id", b.remove)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	return b, srv
}

// configure changes the backend behaviour while requests may be in flight.
func (b *fakeBackend) configure(fn func(b *fakeBackend)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fn(b)
}

// seen returns the request IDs received and the number of notes requests.
func (b *fakeBackend) seen() ([]string, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]string(nil), b.requestIDs...), b.noteHits
}

func (b *fakeBackend) recordRequestID(c *gin.Context) {
	b.mu.Lock()
	b.requestIDs = append(b.requestIDs, c.GetHeader("X-Request-ID"))
	b.mu.Unlock()

	c.Next()
}

func (b *fakeBackend) issueToken(email string, ttl time.Duration) string {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   email,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(testSecret))
	if err != nil {
		panic(err)
	}

	return signed
}

func (b *fakeBackend) authResponse(c *gin.Context, name, email string) {
	b.mu.Lock()
	ttl, omitUser := b.tokenTTL, b.omitUser
	b.mu.Unlock()

	token := b.issueToken(email, ttl)

	if omitUser {
		c.JSON(http.StatusOK, gin.H{"token": token, "name": name, "email": email})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"_id": "u1", "name": name, "email": email},
	})
}

func (b *fakeBackend) register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}

	b.mu.Lock()
	_, exists := b.accounts[req.Email]
	if !exists {
		b.accounts[req.Email] = req.Password
	}
	b.mu.Unlock()

	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}

	b.authResponse(c, req.Name, req.Email)
}

func (b *fakeBackend) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}

	b.mu.Lock()
	password, ok := b.accounts[req.Email]
	b.mu.Unlock()

	if !ok || password != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	b.authResponse(c, "Ada", req.Email)
}

func (b *fakeBackend) auth(c *gin.Context) {
	b.mu.Lock()
	b.noteHits++
	fail, body := b.failWith, b.failBody
	b.mu.Unlock()

	if fail != 0 {
		c.String(fail, body)
		c.Abort()

		return
	}

	raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
		return
	}

	_, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}

	c.Next()
}

func (b *fakeBackend) list(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.Note, 0, len(b.notes))

	for i := 1; i <= b.nextID; i++ {
		if n, ok := b.notes[strconv.Itoa(i)]; ok {
			out = append(out, n)
		}
	}

	c.JSON(http.StatusOK, out)
}

func (b *fakeBackend) create(c *gin.Context) {
	var req noteBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++

	now := time.Now().UTC()
	n := models.Note{
		ID:        strconv.Itoa(b.nextID),
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	b.notes[n.ID] = n

	c.JSON(http.StatusCreated, n)
}

func (b *fakeBackend) update(c *gin.Context) {
	var req noteBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	n, ok := b.notes[c.Param("id")]
	if !ok {
		c.String(http.StatusNotFound, "Note not found")
		return
	}

	n.Title = req.Title
	n.Content = req.Content
	n.UpdatedAt = time.Now().UTC()
	b.notes[n.ID] = n

	c.JSON(http.StatusOK, n)
}

func (b *fakeBackend) remove(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.notes[c.Param("id")]; !ok {
		c.String(http.StatusNotFound, "")
		return
	}

	delete(b.notes, c.Param("id"))

	c.JSON(http.StatusOK, gin.H{"message": "Note removed"})
}
