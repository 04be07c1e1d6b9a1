package realtime

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NotifyTriggersSQL installs row triggers that publish a Change on customers_changed
// and orders_changed.
const NotifyTriggersSQL = `
CREATE OR REPLACE FUNCTION notify_row_change() RETURNS trigger AS $$
DECLARE
	row_id text;
BEGIN
	IF TG_OP = 'DELETE' THEN
		row_id := OLD.id::text;
	ELSE
		row_id := NEW.id::text;
	END IF;
	PERFORM pg_notify(TG_ARGV[0], json_build_object('table', TG_TABLE_NAME, 'op', TG_OP, 'id', row_id)::text);
	RETURN NULL;
END;
$$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS customers_notify ON customers;
CREATE TRIGGER customers_notify
	AFTER INSERT OR UPDATE OR DELETE ON customers
	FOR EACH ROW EXECUTE FUNCTION notify_row_change('customers_changed');

DROP TRIGGER IF EXISTS orders_notify ON orders;
CREATE TRIGGER orders_notify
	AFTER INSERT OR UPDATE OR DELETE ON orders
	FOR EACH ROW EXECUTE FUNCTION notify_row_change('orders_changed');
`

func InstallTriggers(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, NotifyTriggersSQL); err != nil {
		return fmt.Errorf("install notify triggers: %w", err)
	}
	return nil
}
