package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS trips (
	id              TEXT PRIMARY KEY,
	owner_id        TEXT NOT NULL,
	name            TEXT NOT NULL,
	description     TEXT,
	start_date      TEXT NOT NULL,
	end_date        TEXT NOT NULL,
	cover_image_url TEXT,
	status          TEXT NOT NULL CHECK(status IN ('upcoming', 'ongoing', 'completed')),
	budget_cents    INTEGER CHECK(budget_cents IS NULL OR budget_cents >= 0),
	currency        TEXT NOT NULL DEFAULT 'USD',
	is_public       INTEGER NOT NULL DEFAULT 0 CHECK(is_public IN (0, 1)),
	share_token     TEXT UNIQUE,
	created_at      INTEGER NOT NULL,
	updated_at      INTEGER NOT NULL,
	CHECK(start_date <= end_date)
);

CREATE TABLE IF NOT EXISTS cities (
	id          TEXT PRIMARY KEY,
	trip_id     TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
	name        TEXT NOT NULL,
	country     TEXT NOT NULL DEFAULT '',
	start_date  TEXT NOT NULL,
	end_date    TEXT NOT NULL,
	order_index INTEGER NOT NULL CHECK(order_index >= 1),
	created_at  INTEGER NOT NULL,
	updated_at  INTEGER NOT NULL,
	UNIQUE(trip_id, order_index),
	UNIQUE(id, trip_id),
	CHECK(start_date <= end_date)
);

CREATE TABLE IF NOT EXISTS activities (
	id            TEXT PRIMARY KEY,
	trip_id       TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
	city_id       TEXT NOT NULL,
	name          TEXT NOT NULL,
	category      TEXT NOT NULL CHECK(category IN ('sightseeing', 'food', 'travel', 'stay', 'other')),
	activity_date TEXT NOT NULL,
	start_time    TEXT,
	end_time      TEXT,
	cost_cents    INTEGER NOT NULL DEFAULT 0 CHECK(cost_cents >= 0),
	notes         TEXT,
	created_at    INTEGER NOT NULL,
	updated_at    INTEGER NOT NULL,
	FOREIGN KEY (city_id, trip_id) REFERENCES cities(id, trip_id) ON DELETE CASCADE,
	CHECK(start_time IS NULL OR end_time IS NULL OR start_time < end_time)
);

CREATE INDEX IF NOT EXISTS idx_trips_owner ON trips(owner_id);
CREATE INDEX IF NOT EXISTS idx_cities_trip ON cities(trip_id);
CREATE INDEX IF NOT EXISTS idx_activities_trip ON activities(trip_id);
CREATE INDEX IF NOT EXISTS idx_activities_city ON activities(city_id, trip_id);
CREATE INDEX IF NOT EXISTS idx_activities_date ON activities(trip_id, activity_date);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE INDEX IF NOT EXISTS idx_trips_public_updated
	ON trips(is_public, updated_at);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
