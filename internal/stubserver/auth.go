package stubserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"JobLane-client/internal/model"
)

const (
	sessionCookie = "joblane_session"
	jwtIssuer     = "JobLane"
)

type loginInfo struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerInfo struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
	Role        string `json:"role" binding:"required,oneof=employer job_seeker"`
}

func (s *Server) generateToken(id uuid.UUID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    jwtIssuer,
		Subject:   id.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *Server) validateToken(encoded string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(encoded, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token")
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Issuer != jwtIssuer {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (s *Server) setSession(c *gin.Context, id uuid.UUID) error {
	signed, err := s.generateToken(id)
	if err != nil {
		return err
	}
	c.SetCookie(sessionCookie, signed, int((24 * time.Hour).Seconds()), "/", "", false, true)
	return nil
}

// loginHandler checks credentials and sets the session cookie.
func (s *Server) loginHandler(c *gin.Context) {
	var info loginInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email and password must be provided"})
		return
	}

	s.state.mu.Lock()
	cred, ok := s.state.passwords[info.Email]
	user := s.state.users[cred.userID]
	s.state.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(cred.hash, []byte(info.Password)) != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Email or password is incorrect"})
		return
	}

	if err := s.setSession(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// registerHandler creates an account and signs it in.
func (s *Server) registerHandler(c *gin.Context) {
	var info registerInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Email, password, display name, and role ('employer' or 'job_seeker') must be provided",
		})
		return
	}
	if len(info.Password) < 8 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Password should longer or equal to 8 characters"})
		return
	}

	s.state.mu.Lock()
	if _, exists := s.state.passwords[info.Email]; exists {
		s.state.mu.Unlock()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email already exist"})
		return
	}
	user := s.state.addUser(info.Email, info.Password, info.DisplayName, info.Role)
	s.state.mu.Unlock()

	if err := s.setSession(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// logoutHandler clears the session cookie.
func (s *Server) logoutHandler(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}

// meHandler returns the authenticated user for session validation.
func (s *Server) meHandler(c *gin.Context) {
	user := extractUser(c)
	c.JSON(http.StatusOK, user)
}

// requireAuth validates the session cookie and loads the user into the
// context before allowing access to the endpoint.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		encoded, err := c.Cookie(sessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Not signed in"})
			return
		}

		claims, err := s.validateToken(encoded)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Session expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid session"})
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid session"})
			return
		}

		s.state.mu.Lock()
		user, ok := s.state.users[userID]
		s.state.mu.Unlock()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "User not exist"})
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// checkRole protects an endpoint from users outside the given roles.
func checkRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := extractUser(c)
		for _, role := range roles {
			if user.Role == role {
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "User doesn't have permission to access"})
	}
}

// extractUser pulls the authenticated user loaded by requireAuth.
func extractUser(c *gin.Context) model.User {
	u, _ := c.Get("user")
	user, _ := u.(model.User)
	return user
}
