package database

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Table Structure:
//
// CREATE TABLE IF NOT EXISTS blog_post (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	author_name VARCHAR(255) NOT NULL,
// 	heading VARCHAR(255) NOT NULL,
// 	slug VARCHAR(255) NOT NULL,
// 	description TEXT NOT NULL,
// 	image_url VARCHAR(255) NOT NULL DEFAULT '',
// 	created_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// );

// CREATE TABLE IF NOT EXISTS instagram_link (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	url VARCHAR(512) NOT NULL,
// 	title VARCHAR(512) NOT NULL DEFAULT '',
// 	PRIMARY KEY(id)
// );
// CREATE UNIQUE INDEX instagram_link_url_idx ON instagram_link (url);

// CREATE TABLE IF NOT EXISTS admin_account (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	name VARCHAR(255) NOT NULL,
// 	email VARCHAR(255) NOT NULL,
// 	password_hash VARCHAR(255) NOT NULL,
// 	created_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// );
// CREATE UNIQUE INDEX admin_account_email_idx ON admin_account (email);

// CREATE TABLE IF NOT EXISTS newsletter_subscriber (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	email VARCHAR(255) NOT NULL,
// 	created_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// );
// CREATE UNIQUE INDEX newsletter_subscriber_email_idx ON newsletter_subscriber (email);

// CREATE TABLE IF NOT EXISTS sponsor_inquiry (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	name VARCHAR(255) NOT NULL,
// 	company VARCHAR(255) NOT NULL,
// 	email VARCHAR(255) NOT NULL,
// 	message TEXT NOT NULL,
// 	created_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// );

// CREATE TABLE IF NOT EXISTS tournament (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	name VARCHAR(255) NOT NULL,
// 	organizer VARCHAR(255) NOT NULL,
// 	location VARCHAR(255) NOT NULL,
// 	country VARCHAR(255) NOT NULL,
// 	continent VARCHAR(255) NOT NULL,
// 	tier INTEGER NOT NULL,
// 	start_date TIMESTAMP NOT NULL,
// 	end_date TIMESTAMP NOT NULL,
// 	image_url VARCHAR(255) NOT NULL,
// 	description TEXT NOT NULL,
// 	lat DOUBLE PRECISION NOT NULL,
// 	lng DOUBLE PRECISION NOT NULL,
// 	status VARCHAR(20) NOT NULL DEFAULT 'pending',
// 	created_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// );

// CREATE TABLE IF NOT EXISTS club (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	name VARCHAR(255) NOT NULL,
// 	email VARCHAR(255) NOT NULL,
// 	contact VARCHAR(255) NOT NULL,
// 	status VARCHAR(20) NOT NULL DEFAULT 'pending',
// 	location VARCHAR(255) NOT NULL,
// 	country VARCHAR(255) NOT NULL,
// 	booking_link VARCHAR(512) NOT NULL DEFAULT '',
// 	club_image_url VARCHAR(512) NOT NULL,
// 	logo_image_url VARCHAR(512) NOT NULL,
// 	description TEXT NOT NULL,
// 	lat DOUBLE PRECISION NOT NULL,
// 	lng DOUBLE PRECISION NOT NULL,
// 	created_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// );

// CREATE TABLE IF NOT EXISTS court (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	name VARCHAR(255) NOT NULL,
// 	location VARCHAR(255) NOT NULL,
// 	country VARCHAR(255) NOT NULL,
// 	lat DOUBLE PRECISION NOT NULL,
// 	lng DOUBLE PRECISION NOT NULL,
// 	number_of_courts INTEGER NOT NULL,
// 	contact VARCHAR(255) NOT NULL,
// 	description TEXT NOT NULL,
// 	created_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// );

// CREATE TABLE IF NOT EXISTS athlete (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	name VARCHAR(255) NOT NULL,
// 	age INTEGER NOT NULL,
// 	gender VARCHAR(10) NOT NULL,
// 	country VARCHAR(255) NOT NULL,
// 	height_cm DOUBLE PRECISION NOT NULL,
// 	points DOUBLE PRECISION NOT NULL DEFAULT 0,
// 	titles_won TEXT[] NOT NULL DEFAULT '{}',
// 	image_url VARCHAR(512) NOT NULL,
// 	created_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// );

// CREATE TABLE IF NOT EXISTS meta (
// 	key VARCHAR(255) NOT NULL UNIQUE,
// 	value VARCHAR(255) NOT NULL,
// 	PRIMARY KEY(key)
// );

const uniqueViolationCode = "23505"

// GetDbConn tries to establish Database connection and returns an error if it fails
func GetDbConn(user, password, host, port, name, sslmode string) (*sql.DB, error) {
	db, err := sql.Open("postgres", fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, password, host, port, name, sslmode))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

func CloseDbConn(conn *sql.DB) {
	conn.Close()
}

// IsUniqueViolation reports whether err is a postgres unique index rejection
func IsUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == uniqueViolationCode
}
