// Package auth implementa el login de cortesía del tablero: no hay usuarios almacenados
// y ninguna ruta exige el token emitido.
package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/supermercado-dashboard/internal/application/dto"
	"github.com/jhoicas/supermercado-dashboard/internal/domain"
	"github.com/jhoicas/supermercado-dashboard/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de login.
type AuthUseCase struct {
	jwtCfg JWTConfig
	delay  time.Duration
	log    zerolog.Logger
}

// NewAuthUseCase construye el caso de uso. delay simula la latencia de una autenticación real.
func NewAuthUseCase(jwtCfg JWTConfig, delay time.Duration, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{jwtCfg: jwtCfg, delay: delay, log: log}
}

// Login acepta cualquier email bien formado con password no vacío y devuelve un token firmado.
// Respeta la cancelación del contexto durante la espera.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y password son requeridos", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email mal formado", domain.ErrInvalidInput)
	}

	if uc.delay > 0 {
		t := time.NewTimer(uc.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	// Nunca se registra la contraseña.
	uc.log.Info().Str("email", email).Msg("inicio de sesión")

	token, err := jwt.Generate(uc.jwtCfg.Secret, email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		Email:     email,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
	}, nil
}
