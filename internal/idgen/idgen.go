package idgen

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func init() {
	n := int64(1)
	if v := os.Getenv("NODE_ID"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			n = parsed
		}
	}
	nd, err := snowflake.NewNode(n)
	if err != nil {
		panic("idgen: " + err.Error())
	}
	node = nd
}

// Next returns a process-unique string ID for line items and custom fields.
func Next() string {
	return node.Generate().String()
}
