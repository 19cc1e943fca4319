package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/moneyflow-app/backend/internal/auth"
	"github.com/moneyflow-app/backend/internal/httputil"
	"github.com/moneyflow-app/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// UserCreate contains the fields to register a user.
type UserCreate struct {
	Name     string `json:"name" binding:"required,min=2" example:"Maria Silva"`          // Name of the user
	Email    string `json:"email" binding:"required" example:"maria@example.com"`         // Email address, used to log in
	Password string `json:"password" binding:"required,min=6" example:"correct-horse-42"` // Password with at least 6 characters
}

// UserLogin contains the credentials to log in.
type UserLogin struct {
	Email    string `json:"email" binding:"required" example:"maria@example.com"`   // Email address of the user
	Password string `json:"password" binding:"required" example:"correct-horse-42"` // Password of the user
}

type User struct {
	models.DefaultModel
	Name  string `json:"name" example:"Maria Silva"`        // Name of the user
	Email string `json:"email" example:"maria@example.com"` // Email address of the user
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Email:        model.Email,
	}
}

type Token struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.e30.Et9HFtf9R3GEMA0IICOfFMVXY7kkTX1wr4qCyhIf58U"` // Bearer token for the Authorization header
	ExpiresAt time.Time `json:"expiresAt" example:"2025-04-09T19:28:44Z"`                                                             // Time at which the token expires
	User      User      `json:"user"`                                                                                                 // The authenticated user
}

type TokenResponse struct {
	Error *string `json:"error" example:"the email or password is wrong"` // The error, if any occurred
	Data  *Token  `json:"data"`                                           // Token and user, if authentication was successful
}

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsUsers)
		r.POST("", co.CreateUser)
	}

	{
		r.OPTIONS("/login", co.OptionsLogin)
		r.POST("/login", co.Login)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func (co Controller) OptionsUsers(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users/login [options]
func (co Controller) OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register user
// @Description	Creates a user and returns a token for it
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201		{object}	TokenResponse
// @Failure		400		{object}	TokenResponse
// @Failure		409		{object}	TokenResponse
// @Failure		500		{object}	TokenResponse
// @Param			user	body		UserCreate	true	"User"
// @Router			/v1/users [post]
func (co Controller) CreateUser(c *gin.Context) {
	var create UserCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{
			Error: &e,
		})
		return
	}

	create.Email, err = httputil.NormalizeEmail(create.Email)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{
			Error: &e,
		})
		return
	}

	hash, err := auth.HashPassword(create.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{
			Error: &e,
		})
		return
	}

	user := models.User{
		Name:     create.Name,
		Email:    create.Email,
		Password: hash,
	}

	err = co.DB.WithContext(c).Create(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{
			Error: &e,
		})
		return
	}

	co.respondWithToken(c, http.StatusCreated, user)
}

// @Summary		Log in
// @Description	Returns a token for the user with the given credentials
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200			{object}	TokenResponse
// @Failure		400			{object}	TokenResponse
// @Failure		401			{object}	TokenResponse
// @Failure		500			{object}	TokenResponse
// @Param			credentials	body		UserLogin	true	"Credentials"
// @Router			/v1/users/login [post]
func (co Controller) Login(c *gin.Context) {
	var login UserLogin
	err := httputil.BindData(c, &login)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{
			Error: &e,
		})
		return
	}

	login.Email, err = httputil.NormalizeEmail(login.Email)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	err = co.DB.WithContext(c).First(&user, "email = ?", login.Email).Error

	// Unknown users get the same answer as wrong passwords
	if errors.Is(err, models.ErrResourceNotFound) {
		err = auth.ErrInvalidCredentials
	}

	if err == nil {
		err = auth.CheckPassword(user.Password, login.Password)
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{
			Error: &e,
		})
		return
	}

	co.respondWithToken(c, http.StatusOK, user)
}

// respondWithToken issues a token for the user and sends it.
func (co Controller) respondWithToken(c *gin.Context, code int, user models.User) {
	token, expiresAt, err := co.Tokens.Issue(user.ID)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())

		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, TokenResponse{
			Error: &e,
		})
		return
	}

	c.JSON(code, TokenResponse{
		Data: &Token{
			Token:     token,
			ExpiresAt: expiresAt,
			User:      newUser(user),
		},
	})
}
