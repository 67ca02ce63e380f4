package store

const schema = `
CREATE TABLE IF NOT EXISTS registrations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL,
    year INTEGER NOT NULL,
    quarter TEXT NOT NULL,
    month INTEGER NOT NULL,
    vehicle_type TEXT NOT NULL,
    manufacturer TEXT NOT NULL,
    registrations INTEGER NOT NULL,
    fuel_type TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS growth_metrics (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    entity_type TEXT NOT NULL,
    entity_name TEXT NOT NULL,
    metric_type TEXT NOT NULL,
    period TEXT NOT NULL,
    current_value INTEGER,
    previous_value INTEGER,
    growth_rate REAL,
    growth_absolute INTEGER,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS market_share (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    period TEXT NOT NULL,
    vehicle_type TEXT NOT NULL,
    manufacturer TEXT NOT NULL,
    registrations INTEGER NOT NULL,
    market_share_percent REAL NOT NULL,
    rank_position INTEGER NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_reg_date ON registrations(date);
CREATE INDEX IF NOT EXISTS idx_reg_vehicle_type ON registrations(vehicle_type);
CREATE INDEX IF NOT EXISTS idx_reg_manufacturer ON registrations(manufacturer);
CREATE INDEX IF NOT EXISTS idx_reg_year_quarter ON registrations(year, quarter);
CREATE INDEX IF NOT EXISTS idx_growth_entity ON growth_metrics(entity_type, metric_type);
CREATE INDEX IF NOT EXISTS idx_share_type_period ON market_share(vehicle_type, period);
`
