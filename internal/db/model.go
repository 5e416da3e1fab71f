// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Comment struct {
		ID, NewsID, AuthorID, Text, CreatedAt string

		News, Author string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	News struct {
		ID, Title, Text, Date string
	}
	Session struct {
		ID, UserID, CreatedAt, ExpiresAt string

		User string
	}
	User struct {
		ID, Username, PasswordHash, CreatedAt string
	}
}{
	Comment: struct {
		ID, NewsID, AuthorID, Text, CreatedAt string

		News, Author string
	}{
		ID:        "commentId",
		NewsID:    "newsId",
		AuthorID:  "authorId",
		Text:      "text",
		CreatedAt: "createdAt",

		News:   "News",
		Author: "Author",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	News: struct {
		ID, Title, Text, Date string
	}{
		ID:    "newsId",
		Title: "title",
		Text:  "text",
		Date:  "date",
	},
	Session: struct {
		ID, UserID, CreatedAt, ExpiresAt string

		User string
	}{
		ID:        "sessionId",
		UserID:    "userId",
		CreatedAt: "createdAt",
		ExpiresAt: "expiresAt",

		User: "User",
	},
	User: struct {
		ID, Username, PasswordHash, CreatedAt string
	}{
		ID:           "userId",
		Username:     "username",
		PasswordHash: "passwordHash",
		CreatedAt:    "createdAt",
	},
}

var Tables = struct {
	Comment struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	News struct {
		Name, Alias string
	}
	Session struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	News: struct {
		Name, Alias string
	}{
		Name:  "news",
		Alias: "t",
	},
	Session: struct {
		Name, Alias string
	}{
		Name:  "sessions",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID        int       `pg:"commentId,pk"`
	NewsID    int       `pg:"newsId,use_zero"`
	AuthorID  int       `pg:"authorId,use_zero"`
	Text      string    `pg:"text,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`

	News   *News `pg:"fk:newsId,rel:has-one"`
	Author *User `pg:"fk:authorId,rel:has-one"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID    int       `pg:"newsId,pk"`
	Title string    `pg:"title,use_zero"`
	Text  string    `pg:"text,use_zero"`
	Date  time.Time `pg:"date,use_zero"`
}

type Session struct {
	tableName struct{} `pg:"sessions,alias:t,discard_unknown_columns"`

	ID        string    `pg:"sessionId,pk"`
	UserID    int       `pg:"userId,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
	ExpiresAt time.Time `pg:"expiresAt,use_zero"`

	User *User `pg:"fk:userId,rel:has-one"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           int       `pg:"userId,pk"`
	Username     string    `pg:"username,use_zero"`
	PasswordHash string    `pg:"passwordHash,use_zero"`
	CreatedAt    time.Time `pg:"createdAt,use_zero"`
}
