package domain

// Admin accounts are provisioned out-of-band (see cmd/seed); the API only
// ever reads them during login.
type Admin struct {
	ID       int64  `gorm:"column:id;primaryKey" json:"id"`
	Username string `gorm:"column:username;size:50;uniqueIndex;not null" json:"username"`
	Password string `gorm:"column:password;size:255;not null" json:"-"`
}

func (Admin) TableName() string { return "admins" }

// User is created via signup and immutable afterwards.
// Password is stored verbatim — a known defect inherited from the legacy
// data set; do not add hashing without a migration plan for existing rows.
type User struct {
	ID        int64  `gorm:"column:id;primaryKey" json:"id"`
	FirstName string `gorm:"column:first_name;size:50;not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;size:50;not null" json:"last_name"`
	Username  string `gorm:"column:username;size:50;uniqueIndex;not null" json:"username"`
	Email     string `gorm:"column:email;size:100;uniqueIndex;not null" json:"email"`
	Password  string `gorm:"column:password;size:255;not null" json:"-"`
}

func (User) TableName() string { return "users" }
