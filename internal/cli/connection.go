package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/yakusoku/internal/keyring"
	"github.com/julianstephens/yakusoku/internal/storage"
)

// ConnectionCmd manages the cloud-sync database credentials held in the
// OS keyring.
type ConnectionCmd struct {
	Set   ConnectionSetCmd   `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
	Show  ConnectionShowCmd  `cmd:"" help:"Show whether a connection string is stored."`
	Clear ConnectionClearCmd `cmd:"" help:"Remove the stored connection string."`
}

type ConnectionSetCmd struct {
	ConnStr string `arg:"" help:"PostgreSQL connection string (postgres:// URL or DSN)."`
}

func (c *ConnectionSetCmd) Run(ctx *Context) error {
	if !storage.IsPostgresTarget(c.ConnStr) && !looksLikeDSN(c.ConnStr) {
		return fmt.Errorf("expected a postgres:// URL or a key=value DSN")
	}
	if err := keyring.SetConnectionString(c.ConnStr); err != nil {
		return err
	}
	fmt.Println("Connection string stored in the OS keyring.")
	fmt.Println("Enable it with 'yakusoku settings set cloud-sync true'.")
	return nil
}

func looksLikeDSN(s string) bool {
	// Cheap structural check; the real validation happens on connect.
	for _, r := range s {
		if r == '=' {
			return true
		}
	}
	return false
}

type ConnectionShowCmd struct{}

func (c *ConnectionShowCmd) Run(ctx *Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No connection string stored.")
			return nil
		}
		return err
	}

	// Echo the redacted form only.
	probe := storage.NewPostgresStore(connStr)
	fmt.Printf("Stored connection: %s\n", probe.StorePath())
	return nil
}

type ConnectionClearCmd struct{}

func (c *ConnectionClearCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No connection string stored.")
			return nil
		}
		return err
	}
	fmt.Println("Connection string removed from the OS keyring.")
	return nil
}
