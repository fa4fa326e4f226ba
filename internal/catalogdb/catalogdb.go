// Package catalogdb reads and updates the catalog metadata table in SQL
// Server. It is a thin data-access wrapper: row filtering and field
// validation happen at this boundary, all matching decisions happen in
// pkg/reconcile.
package catalogdb

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	// Registers the "sqlserver" driver.
	_ "github.com/microsoft/go-mssqldb"

	"github.com/ugrc/stewardlink/internal/config"
	"github.com/ugrc/stewardlink/pkg/errors"
	"github.com/ugrc/stewardlink/pkg/reconcile"
)

// externalItemID marks catalog rows published outside the open data portal.
const externalItemID = "external"

const (
	maxOpenConns    = 5
	maxIdleConns    = 2
	connMaxLifetime = 5 * time.Minute
	pingTimeout     = 5 * time.Second
)

// Client provides catalog table access over one pooled connection. It is
// both the catalog reader and the catalog writer; writes are issued one
// row at a time by the applier, so the pool never sees concurrent updates.
type Client struct {
	db    *sql.DB
	table string
}

// Interface checks.
var (
	_ reconcile.CatalogReader = (*Client)(nil)
	_ reconcile.CatalogWriter = (*Client)(nil)
)

// New opens a pooled connection to the catalog database and verifies it
// with a ping. Failures map to the source-unavailable contract.
func New(ctx context.Context, cfg config.Database) (*Client, error) {
	db, err := sql.Open("sqlserver", dsn(cfg))
	if err != nil {
		return nil, errors.WrapSource("catalog", "open", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.WrapSource("catalog", "connect", err)
	}

	return &Client{db: db, table: cfg.Table}, nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}

// Items returns every publishable row of the catalog table in table order.
// Rows whose item id marks them as externally published are skipped; they
// have no open-data link to maintain.
func (c *Client) Items(ctx context.Context) ([]reconcile.CatalogItem, error) {
	query := fmt.Sprintf(
		"SELECT OBJECTID, TABLENAME, AGOL_ITEM_ID, AGOL_PUBLISHED_NAME, OPEN_DATA_LINK FROM %s ORDER BY OBJECTID",
		c.table)

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.WrapSource("catalog", "query", err)
	}
	defer rows.Close()

	var items []reconcile.CatalogItem
	for rows.Next() {
		var id int64
		var table string
		var itemID, published, link sql.NullString
		if err := rows.Scan(&id, &table, &itemID, &published, &link); err != nil {
			return nil, errors.WrapSource("catalog", "scan", err)
		}

		if !publishable(itemID.String) {
			continue
		}

		items = append(items, reconcile.CatalogItem{
			ID:              strconv.FormatInt(id, 10),
			SourceTableName: strings.TrimSpace(table),
			OpenDataLink:    strings.TrimSpace(link.String),
			AGOLItemID:      strings.TrimSpace(itemID.String),
			PublishedName:   strings.TrimSpace(published.String),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapSource("catalog", "query", err)
	}

	return items, nil
}

// SetOpenDataLink rewrites one row's open-data link, keyed by row id.
func (c *Client) SetOpenDataLink(ctx context.Context, id, link string) error {
	query := fmt.Sprintf("UPDATE %s SET OPEN_DATA_LINK = @p1 WHERE OBJECTID = @p2", c.table)

	result, err := c.db.ExecContext(ctx, query, link, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no catalog row with OBJECTID %s: %w", id, errors.ErrNotFound)
	}

	return nil
}

// publishable reports whether a catalog row participates in open data.
func publishable(itemID string) bool {
	return !strings.EqualFold(strings.TrimSpace(itemID), externalItemID)
}

// dsn builds the sqlserver connection URL from resolved configuration.
func dsn(cfg config.Database) string {
	u := url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Server,
		RawQuery: url.Values{"database": {cfg.Name}}.Encode(),
	}
	return u.String()
}
