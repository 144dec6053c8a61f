package elevator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/infinivision/anxiety/errmsg"
)

func attrs(q *queue) []Attr {
	return []Attr{
		{
			Name: "sync_ratio",
			Show: func() string {
				q.lkr.Lock()
				defer q.lkr.Unlock()
				return fmt.Sprintf("%v\n", q.s.SyncRatio())
			},
			Store: func(v string) error {
				r, err := parseRatio(v)
				if err != nil {
					return err
				}
				q.lkr.Lock()
				q.s.SetSyncRatio(r)
				q.lkr.Unlock()
				return nil
			},
		},
	}
}

func (q *queue) Attrs() []Attr {
	return q.attrs
}

func (q *queue) Show(name string) (string, error) {
	for _, a := range q.attrs {
		if a.Name == name {
			return a.Show(), nil
		}
	}
	return "", errmsg.NoSuchAttr
}

func (q *queue) Store(name string, value string) error {
	for _, a := range q.attrs {
		if a.Name == name {
			return a.Store(value)
		}
	}
	return errmsg.NoSuchAttr
}

// parseRatio accepts a decimal or 0x-prefixed hex value in [0,255], with an
// optional trailing newline. Anything else leaves the old ratio in place.
func parseRatio(s string) (uint8, error) {
	s = strings.TrimSuffix(s, "\n")
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}
	n, err := strconv.ParseUint(s, base, 8)
	if err != nil {
		return 0, errmsg.BadSyncRatio
	}
	return uint8(n), nil
}
