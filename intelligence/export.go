package intelligence

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
)

// CSVHeader is the column contract of the customer export.
var CSVHeader = []string{"Name", "Email", "Status", "Orders", "Lifetime Value", "Last Order", "Joined"}

// WriteCSV writes one header row and one row per customer. Text columns are always
// double-quoted, numbers are bare and dates are RFC3339 (empty when unknown). Text that
// a spreadsheet would evaluate as a formula gets a leading apostrophe.
func WriteCSV(w io.Writer, customers []EnrichedCustomer) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(CSVHeader, ",") + "\n"); err != nil {
		return err
	}

	for _, c := range customers {
		joined := ""
		if t, ok := c.CreatedAt.Time(); ok {
			joined = formatCSVTime(t)
		}
		lastOrder := ""
		if c.LastOrderAt != nil {
			lastOrder = formatCSVTime(*c.LastOrderAt)
		}

		row := []string{
			quoteCSV(c.DisplayName),
			quoteCSV(c.Email),
			quoteCSV(string(c.Status)),
			strconv.Itoa(c.OrdersCount),
			strconv.FormatFloat(finiteOrZero(c.LifetimeValue), 'f', -1, 64),
			lastOrder,
			joined,
		}
		if _, err := bw.WriteString(strings.Join(row, ",") + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func quoteCSV(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		s = "'" + s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatCSVTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
