package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"innkeep/internal/auth"
	"innkeep/internal/config"
	"innkeep/internal/models"
	"innkeep/internal/store"
)

// seedFile is a YAML fixture with accounts and reservations to load into
// a fresh database.
type seedFile struct {
	Users    []seedUser    `yaml:"users"`
	Bookings []seedBooking `yaml:"bookings"`
}

type seedUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type seedBooking struct {
	CheckinDate  string `yaml:"checkin_date"`
	CheckoutDate string `yaml:"checkout_date"`
	Guests       int    `yaml:"guests"`
	PromoCode    bool   `yaml:"promo_code"`
}

func newSeedCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file>",
		Short: "Load accounts and bookings from a YAML fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg == nil || cfg.DBPath == "" {
				return fmt.Errorf("db path is required")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			seed, err := parseSeedFile(data)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			st, err := store.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			now := time.Now().UTC()
			for _, u := range seed.Users {
				hash, err := auth.HashPassword(u.Password)
				if err != nil {
					return fmt.Errorf("hash password for %s: %w", u.Username, err)
				}
				if _, err := st.CreateUser(ctx, u.Username, hash, now); err != nil {
					if store.IsUniqueConstraint(err) {
						fmt.Fprintf(cmd.ErrOrStderr(), "skipping existing user %s\n", u.Username)
						continue
					}
					return err
				}
			}
			for i := range seed.Bookings {
				b := models.Booking{
					CheckinDate:  seed.Bookings[i].CheckinDate,
					CheckoutDate: seed.Bookings[i].CheckoutDate,
					Guests:       seed.Bookings[i].Guests,
					PromoCode:    seed.Bookings[i].PromoCode,
					CreatedAt:    now,
				}
				if err := createSeedBooking(ctx, st, &b); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users, %d bookings\n", len(seed.Users), len(seed.Bookings))
			return nil
		},
	}
}

func createSeedBooking(ctx context.Context, st *store.Store, b *models.Booking) error {
	if b.CheckinDate == "" || b.CheckoutDate == "" || b.Guests <= 0 {
		return fmt.Errorf("invalid booking fixture: %+v", *b)
	}
	return st.CreateBooking(ctx, b)
}

func parseSeedFile(data []byte) (*seedFile, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, err
	}
	for i, u := range seed.Users {
		if strings.TrimSpace(u.Username) == "" || u.Password == "" {
			return nil, fmt.Errorf("user %d: username and password are required", i)
		}
	}
	return &seed, nil
}
