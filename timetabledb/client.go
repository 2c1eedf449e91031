package timetabledb

import (
	"database/sql"
	"log"
)

// Client is the main entry point for the timetable store
type Client struct {
	config  Config
	DB      *sql.DB
	Queries *Queries
}

// NewClient opens (or creates) the SQLite database described by the
// configuration and prepares the query layer on top of it.
func NewClient(config Config) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, err
	}
	if config.verbose {
		log.Println("Successfully created tables")
	}

	client := &Client{
		config:  config,
		DB:      db,
		Queries: New(db),
	}
	return client, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}
