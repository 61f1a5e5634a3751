package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/felixgeelhaar/shopbazar/internal/auth"
	"github.com/felixgeelhaar/shopbazar/internal/config"
	"github.com/felixgeelhaar/shopbazar/internal/domain"
)

// cmdToken prints an access token for the given identity
func cmdToken(args []string, out io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("name and email required (e.g., shopbazar token Ada ada@example.com)")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	return issueToken(cfg, args[0], args[1], out)
}

func issueToken(cfg *config.Config, name, email string, out io.Writer) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email must not be empty")
	}

	tokens, err := auth.NewJWT(cfg.Token.Secret, cfg.Token.TTL)
	if err != nil {
		return err
	}

	token, err := tokens.Issue(domain.SessionClaim{Name: name, Email: email})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token)
	return err
}
