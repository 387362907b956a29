package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"laundryhub-backend/logger"
	"laundryhub-backend/models"
	"laundryhub-backend/repository"
	"laundryhub-backend/services"
	"laundryhub-backend/utils"

	"github.com/gin-gonic/gin"
)

const resetTokenTTL = time.Hour

type SignupInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PasswordResetInput struct {
	Email string `json:"email" binding:"required"`
}

type PasswordResetConfirmInput struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Users    repository.UserRepository
	Tokens   *utils.TokenIssuer
	Notifier services.Notifier
	Now      func() time.Time
}

func (a *AuthController) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now().UTC()
}

// Signup creates an account and signs the user straight in.
func (a *AuthController) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := utils.ValidateCredentials(input.Email, input.Password); err != nil {
		respondWithFailure(c, err)
		return
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		respondWithFailure(c, &utils.ValidationError{Field: "phone", Message: "Invalid phone number format"})
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		// Default name is the email, can be changed later
		name = strings.TrimSpace(input.Email)
	}
	user := models.User{
		Email:    input.Email,
		Password: input.Password, // hashed in BeforeCreate
		Name:     name,
		Phone:    strings.TrimSpace(input.Phone),
		IsActive: true,
	}
	if err := a.Users.Create(c.Request.Context(), &user); err != nil {
		respondWithFailure(c, err)
		return
	}

	token, ok := a.issue(c, &user)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"title":   "Account created!",
		"message": "Welcome to Laundry Hub. You're now logged in.",
		"token":   token,
		"user":    userView(&user),
	})
}

func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := utils.ValidateCredentials(input.Email, input.Password); err != nil {
		respondWithFailure(c, err)
		return
	}

	user, err := a.Users.FindByEmail(c.Request.Context(), input.Email)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && !utils.CheckPasswordHash(input.Password, user.Password)) {
		utils.RespondWithNotice(c, http.StatusUnauthorized, "Sign in failed", "Invalid email or password. Please try again.")
		return
	}
	if err != nil {
		respondWithFailure(c, err)
		return
	}
	if !user.IsActive {
		utils.RespondWithNotice(c, http.StatusForbidden, "Account disabled", "This account has been deactivated. Please contact support.")
		return
	}

	if err := a.Users.TouchLastLogin(c.Request.Context(), user.ID, a.now()); err != nil {
		logger.Get().Warn("failed to update last login", "user_id", user.ID, "error", err)
	}

	token, ok := a.issue(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"title":   "Welcome back!",
		"message": "You've successfully logged in.",
		"token":   token,
		"user":    userView(user),
	})
}

func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie(utils.TokenCookie, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func (a *AuthController) Me(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		respondWithFailure(c, err)
		return
	}

	user, err := a.Users.FindByID(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && !user.IsActive) {
		// Token outlived its account.
		utils.RespondAuthRequired(c)
		return
	}
	if err != nil {
		respondWithFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userView(user)})
}

// RequestPasswordReset answers the same way whether or not the email is known.
func (a *AuthController) RequestPasswordReset(c *gin.Context) {
	var input PasswordResetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := utils.ValidateEmail(input.Email); err != nil {
		respondWithFailure(c, err)
		return
	}

	ctx := c.Request.Context()
	log := logger.Get()
	user, err := a.Users.FindByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Info("password reset for unknown email")
	case err != nil:
		respondWithFailure(c, err)
		return
	default:
		token := utils.GenerateRandomString(32)
		reset := models.PasswordReset{
			UserID:    user.ID,
			TokenHash: utils.HashToken(token),
			ExpiresAt: a.now().Add(resetTokenTTL),
		}
		if err := a.Users.CreateReset(ctx, &reset); err != nil {
			respondWithFailure(c, err)
			return
		}
		msg := "Your Laundry Hub password reset code is " + token + ". It expires in one hour."
		if _, err := a.Notifier.Send(ctx, user.Phone, msg); err != nil {
			log.Warn("failed to deliver reset token", "user_id", user.ID, "error", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"title":   "Reset email sent!",
		"message": "Check your email for the password reset link.",
	})
}

func (a *AuthController) ConfirmPasswordReset(c *gin.Context) {
	var input PasswordResetConfirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := utils.ValidatePassword(input.Password); err != nil {
		respondWithFailure(c, err)
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		respondWithFailure(c, err)
		return
	}
	if err := a.Users.ResetPassword(c.Request.Context(), utils.HashToken(input.Token), hash, a.now()); err != nil {
		respondWithFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated. You can now sign in."})
}

func (a *AuthController) issue(c *gin.Context, user *models.User) (string, bool) {
	token, err := a.Tokens.GenerateToken(user.ID.String(), user.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return "", false
	}
	c.SetCookie(utils.TokenCookie, token, a.Tokens.MaxAgeSeconds(), "/", "", true, true)
	return token, true
}

func userView(u *models.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
		"phone": u.Phone,
	}
}
