package store

import (
	"fmt"
	"strconv"

	"github.com/astaxie/beego/orm"
	// registers the "mysql" database/sql driver beego/orm dials through.
	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore is a Pipeline backed by one MySQL table per shard, managed
// through beego/orm, merging pipeline/mysqldb.go's orm-based schema setup
// with real Set/Delete/Recover bodies — the teacher's own MySQL pipeline
// stubs these three out ("本实例仅供参考"/for-reference-only) and never
// implements them.
type MySQLStore struct {
	dbInfo      string
	shardNum    int
	tablePrefix string
	aliasName   string
}

type mysqlKeyValue struct {
	Id    int
	Key   string `orm:"size(255);unique"`
	Value string `orm:"type(text)"`
}

// NewMySQLStore returns a MySQLStore connecting via dbInfo (a beego/orm
// MySQL DSN) with shardNum tables named tablePrefix+shard.
func NewMySQLStore(dbInfo string, shardNum int, tablePrefix string) *MySQLStore {
	return &MySQLStore{dbInfo: dbInfo, shardNum: shardNum, tablePrefix: tablePrefix, aliasName: "ik_store"}
}

const createTableSQL = `CREATE TABLE IF NOT EXISTS %s (
	id INTEGER AUTO_INCREMENT NOT NULL PRIMARY KEY,
	k VARCHAR(255) NOT NULL UNIQUE,
	v LONGTEXT NOT NULL
)`

func (s *MySQLStore) Init() error {
	orm.RegisterDriver("mysql", orm.DR_MySQL)
	if err := orm.RegisterDataBase(s.aliasName, "mysql", s.dbInfo); err != nil {
		return fmt.Errorf("store: register mysql database: %w", err)
	}
	orm.RegisterModel(new(mysqlKeyValue))

	o := orm.NewOrm()
	o.Using(s.aliasName)
	for shard := 0; shard < s.shardNum; shard++ {
		if _, err := o.Raw(fmt.Sprintf(createTableSQL, s.tableName(shard))).Exec(); err != nil {
			return fmt.Errorf("store: create table for shard %d: %w", shard, err)
		}
	}
	return nil
}

func (s *MySQLStore) tableName(shard int) string {
	return s.tablePrefix + strconv.Itoa(shard)
}

func (s *MySQLStore) GetStorageShards() int { return s.shardNum }

// Conn is a no-op: beego/orm pools connections per registered database
// alias, not per shard, same as the teacher's own stub.
func (s *MySQLStore) Conn(shard int) error { return nil }

// Close is a no-op for the same reason.
func (s *MySQLStore) Close(shard int) error { return nil }

func (s *MySQLStore) Recover(shard int, fn RecoverFunc) error {
	o := orm.NewOrm()
	o.Using(s.aliasName)
	var rows []mysqlKeyValue
	_, err := o.Raw(fmt.Sprintf("SELECT id, k AS `key`, v AS `value` FROM %s", s.tableName(shard))).QueryRows(&rows)
	if err != nil {
		return fmt.Errorf("store: recover shard %d: %w", shard, err)
	}
	for _, row := range rows {
		data, err := DecodeRecord([]byte(row.Value))
		if err != nil {
			continue
		}
		fn(DecodeKey([]byte(row.Key)), data)
	}
	return nil
}

func (s *MySQLStore) Set(shard int, key, value []byte) error {
	o := orm.NewOrm()
	o.Using(s.aliasName)
	_, err := o.Raw(
		fmt.Sprintf("INSERT INTO %s (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)", s.tableName(shard)),
		string(key), string(value),
	).Exec()
	return err
}

func (s *MySQLStore) Delete(shard int, key []byte) error {
	o := orm.NewOrm()
	o.Using(s.aliasName)
	_, err := o.Raw(fmt.Sprintf("DELETE FROM %s WHERE k = ?", s.tableName(shard)), string(key)).Exec()
	return err
}
