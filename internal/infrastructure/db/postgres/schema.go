package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema mirrors the application-level invariants as a second line of
// defense: unique indexes back the uniqueness checks, the (client_id,
// owner_id) pair blocks duplicate sponsorships, and the bill_to/currency
// check rejects any write that slips past EffectiveCurrency.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id                       SERIAL PRIMARY KEY,
    username                 VARCHAR(20)  NOT NULL UNIQUE CHECK (LENGTH(username) >= 3),
    email                    VARCHAR(50)  NOT NULL UNIQUE CHECK (LENGTH(email) >= 10),
    first_name               VARCHAR(15)  NOT NULL CHECK (LENGTH(first_name) >= 2),
    last_name                VARCHAR(15)  NOT NULL CHECK (LENGTH(last_name) >= 2),
    hashed_password          VARCHAR(200) NOT NULL,
    is_active                BOOLEAN      NOT NULL DEFAULT TRUE,
    role                     VARCHAR(10)  NOT NULL DEFAULT 'b2c',
    new_role_requested       VARCHAR(10),
    new_role_request_pending BOOLEAN      NOT NULL DEFAULT FALSE,
    phone_number             VARCHAR(15)  CHECK (phone_number IS NULL OR LENGTH(phone_number) >= 3)
);

CREATE TABLE IF NOT EXISTS client_info (
    id                 SERIAL PRIMARY KEY,
    client_id          VARCHAR(5)   NOT NULL UNIQUE,
    company_short_name VARCHAR(10)  NOT NULL UNIQUE CHECK (LENGTH(company_short_name) >= 4),
    company_full_name  VARCHAR(50)  NOT NULL CHECK (LENGTH(company_full_name) >= 10),
    company_email      VARCHAR(50)  NOT NULL CHECK (LENGTH(company_email) >= 10),
    company_phone      VARCHAR(15)  NOT NULL CHECK (LENGTH(company_phone) >= 10),
    company_website    VARCHAR(30)  CHECK (company_website IS NULL OR LENGTH(company_website) >= 5),
    company_address    VARCHAR(100) CHECK (company_address IS NULL OR LENGTH(company_address) >= 10),
    currency_type      VARCHAR(3)   NOT NULL DEFAULT 'USD',
    owner_id           INTEGER      NOT NULL UNIQUE REFERENCES users (id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS partner_info (
    id                 SERIAL PRIMARY KEY,
    partner_id         VARCHAR(10)  NOT NULL,
    company_short_name VARCHAR(20)  NOT NULL UNIQUE CHECK (LENGTH(company_short_name) >= 4),
    company_full_name  VARCHAR(50)  NOT NULL CHECK (LENGTH(company_full_name) >= 10),
    company_email      VARCHAR(50)  NOT NULL CHECK (LENGTH(company_email) >= 10),
    company_phone      VARCHAR(15)  NOT NULL CHECK (LENGTH(company_phone) >= 3),
    company_website    VARCHAR(30)  CHECK (company_website IS NULL OR LENGTH(company_website) >= 5),
    company_address    VARCHAR(100) CHECK (company_address IS NULL OR LENGTH(company_address) >= 10),
    bill_to            VARCHAR(10)  NOT NULL DEFAULT 'client',
    currency_type      VARCHAR(3),
    client_id          VARCHAR(5)   NOT NULL REFERENCES client_info (client_id) ON DELETE CASCADE,
    owner_id           INTEGER      NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    UNIQUE (client_id, owner_id),
    CHECK ((bill_to = 'partner' AND currency_type IS NOT NULL) OR
           (bill_to = 'client' AND currency_type IS NULL))
);
`

// EnsureSchema creates the tables and constraints when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
