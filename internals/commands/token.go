package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	database "schoolku_backend/internals/databases"
	userModel "schoolku_backend/internals/features/users/users/model"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// TokenCmd mencetak access token untuk user yang sudah ada (akses API/testing).
func TokenCmd(st *state) *cobra.Command {
	var (
		email string
		ttl   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Buat JWT untuk user berdasarkan email",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Connect(st.cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			tok, err := issueToken(db, st.cfg.JWTSecret, email, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email user (wajib)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "masa berlaku token")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func issueToken(db *gorm.DB, secret, email string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", errors.New("ttl harus > 0")
	}
	var u userModel.UserModel
	err := db.First(&u, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("user %q tidak ditemukan", email)
	}
	if err != nil {
		return "", err
	}
	if !u.IsActive {
		return "", fmt.Errorf("user %q nonaktif", email)
	}
	return authMiddleware.IssueAccessToken(secret, u.ID, u.Role, ttl)
}
