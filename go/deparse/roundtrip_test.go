// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package deparse_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/multigres/pgdeparse/go/deparse"
	"github.com/multigres/pgdeparse/go/deparse/jsontree"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// roundTrip parses sql, renders it, and checks that the output parses to the
// same fingerprint and renders to itself again.
func roundTrip(t *testing.T, sql string) string {
	t.Helper()
	nodes, err := jsontree.ParseSQL(sql)
	require.NoError(t, err, "parse should succeed for: %s", sql)

	rendered, err := deparse.Render(nodes)
	require.NoError(t, err, "render should succeed for: %s", sql)

	want, err := jsontree.Fingerprint(sql)
	require.NoError(t, err)
	got, err := jsontree.Fingerprint(rendered)
	require.NoError(t, err, "rendered SQL should parse.\nOriginal: %s\nRendered: %s", sql, rendered)
	assert.Equal(t, want, got, "fingerprint mismatch.\nOriginal: %s\nRendered: %s", sql, rendered)

	nodes2, err := jsontree.ParseSQL(rendered)
	require.NoError(t, err)
	rendered2, err := deparse.Render(nodes2)
	require.NoError(t, err)
	assert.Equal(t, rendered, rendered2, "rendering should be stable")
	return rendered
}

func TestCanonicalOutput(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"SELECT 1", "SELECT 1"},
		{"select a, b from t where a = 1", "SELECT a, b FROM t WHERE a = 1"},
		{"SELECT 1 + 2 * 3", "SELECT 1 + (2 * 3)"},
		{"SELECT * FROM only t", "SELECT * FROM ONLY t"},
		{"SELECT a AS x FROM t AS u", "SELECT a AS x FROM t u"},
		{`SELECT "MixedCase", "user", name FROM t`, `SELECT "MixedCase", "user", name FROM t`},
		{"SELECT a::text FROM t", "SELECT a::text FROM t"},
		{"SELECT a FROM t WHERE a IN (1, 2)", "SELECT a FROM t WHERE a IN (1, 2)"},
		{"SELECT count(*) FROM t GROUP BY a ORDER BY a DESC LIMIT 10", "SELECT count(*) FROM t GROUP BY a ORDER BY a DESC LIMIT 10"},
		{"SELECT DISTINCT a FROM t", "SELECT DISTINCT a FROM t"},
		{"SELECT 1 UNION ALL SELECT 2", "SELECT 1 UNION ALL SELECT 2"},
		{"(SELECT 1 UNION SELECT 2) UNION SELECT 3", "(SELECT 1 UNION SELECT 2) UNION SELECT 3"},
		{"SELECT 1 UNION SELECT 2 UNION SELECT 3", "(SELECT 1 UNION SELECT 2) UNION SELECT 3"},
		{"SELECT 1 EXCEPT SELECT 2 INTERSECT SELECT 3", "SELECT 1 EXCEPT (SELECT 2 INTERSECT SELECT 3)"},
		{"SELECT (ARRAY[1, 2])[1]", "SELECT (ARRAY[1, 2])[1]"},
		{"SELECT (ARRAY(SELECT 1))[1]", "SELECT (ARRAY(SELECT 1))[1]"},
		{"SET TRANSACTION SNAPSHOT '0001'", "SET TRANSACTION SNAPSHOT '0001'"},
		{"CREATE TABLESPACE ts LOCATION '/data'", "CREATE TABLESPACE ts LOCATION '/data'"},
		{"INSERT INTO t (a, b) VALUES (1, 'x') RETURNING a", "INSERT INTO t (a, b) VALUES (1, 'x') RETURNING a"},
		{"INSERT INTO t DEFAULT VALUES", "INSERT INTO t DEFAULT VALUES"},
		{"UPDATE t SET (a, b) = (1, 2)", "UPDATE t SET (a, b) = (1, 2)"},
		{"UPDATE t SET a = 1, b = 2 WHERE c", "UPDATE t SET a = 1, b = 2 WHERE c"},
		{"DELETE FROM t WHERE a IS NULL", "DELETE FROM t WHERE a IS NULL"},
		{"CREATE TABLE t ()", "CREATE TABLE t ()"},
		{"DROP POLICY p ON s.t", "DROP POLICY p ON s.t"},
		{"DROP TABLE IF EXISTS a, b CASCADE", "DROP TABLE IF EXISTS a, b CASCADE"},
		{"BEGIN", "BEGIN"},
		{"COMMIT AND CHAIN", "COMMIT AND CHAIN"},
		{"SAVEPOINT sp", "SAVEPOINT sp"},
		{"CHECKPOINT", "CHECKPOINT"},
		{"SELECT 1; SELECT 2", "SELECT 1; SELECT 2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, roundTrip(t, tt.input))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []string{
		// Expressions
		"SELECT a FROM t WHERE b LIKE 'x%' AND c NOT ILIKE 'y'",
		"SELECT a FROM t WHERE b SIMILAR TO 'a|b'",
		"SELECT a FROM t WHERE b BETWEEN 1 AND 10",
		"SELECT a FROM t WHERE b NOT BETWEEN SYMMETRIC 10 AND 1",
		"SELECT a IS DISTINCT FROM b, a IS NOT DISTINCT FROM b FROM t",
		"SELECT NULLIF(a, b) FROM t",
		"SELECT a = ANY(ARRAY[1, 2, 3]) FROM t",
		"SELECT a LIKE ANY (SELECT b FROM u) FROM t",
		"SELECT CASE WHEN a > 0 THEN 'pos' WHEN a < 0 THEN 'neg' ELSE 'zero' END FROM t",
		"SELECT CASE a WHEN 1 THEN 'one' END FROM t",
		"SELECT COALESCE(a, b, 0), GREATEST(a, b), LEAST(a, b) FROM t",
		"SELECT a IS TRUE, b IS NOT UNKNOWN FROM t",
		"SELECT NOT (a AND b) OR c FROM t",
		"SELECT -a, @ b FROM t",
		"SELECT a OPERATOR(pg_catalog.+) b FROM t",
		"SELECT EXISTS (SELECT 1 FROM u WHERE u.id = t.id) FROM t",
		"SELECT ARRAY(SELECT id FROM u)",
		"SELECT (SELECT max(id) FROM u) + 1",
		"SELECT a[1], a[1:2], (b).c, (b).* FROM t",
		"SELECT ROW(1, 2), (1, 'x')",
		"SELECT $1, $2::int",
		"SELECT 1.5, -3, 'it''s', E'a\\\\b', B'0101', X'1F', true, NULL",
		"SELECT CAST(a + 1 AS bigint) FROM t",
		"SELECT '2020-01-01'::date, interval '1 day', 'x'::varchar(10), 1::numeric(10, 2)",
		"SELECT a::timestamp(3) with time zone, b::interval hour to minute FROM t",
		"SELECT current_date, current_timestamp, current_timestamp(3), localtime, current_user, session_user",
		"SELECT a COLLATE \"C\" FROM t",
		// Functions
		"SELECT count(DISTINCT a), string_agg(b, ',' ORDER BY b) FROM t",
		"SELECT percentile_cont(0.5) WITHIN GROUP (ORDER BY a) FROM t",
		"SELECT sum(a) FILTER (WHERE a > 0) FROM t",
		"SELECT row_number() OVER (PARTITION BY a ORDER BY b ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW) FROM t",
		"SELECT sum(a) OVER w FROM t WINDOW w AS (ORDER BY b RANGE BETWEEN 1 PRECEDING AND 1 FOLLOWING EXCLUDE TIES)",
		"SELECT concat_ws(',', VARIADIC ARRAY['a', 'b'])",
		"SELECT make_interval(days => 1)",
		"SELECT EXTRACT(year FROM ts), POSITION('a' IN s), SUBSTRING(s FROM 1 FOR 2) FROM t",
		"SELECT TRIM(BOTH ' ' FROM s), TRIM(LEADING FROM s) FROM t",
		"SELECT OVERLAY(s PLACING 'x' FROM 2 FOR 1) FROM t",
		"SELECT ts AT TIME ZONE 'UTC' FROM t",
		"SELECT (a, b) OVERLAPS (c, d) FROM t",
		"SELECT GROUPING(a, b), a, b FROM t GROUP BY ROLLUP (a, b)",
		"SELECT a FROM t GROUP BY GROUPING SETS ((a), (b), ()), CUBE (c)",
		"SELECT xmlelement(name foo, xmlattributes(1 AS bar), 'baz')",
		"SELECT xmlforest(a, b AS c) FROM t",
		"SELECT xmlserialize(CONTENT doc AS text) FROM t",
		"SELECT doc IS DOCUMENT FROM t",
		// Queries
		"SELECT DISTINCT ON (a) a, b FROM t ORDER BY a, b DESC NULLS LAST",
		"SELECT a FROM t GROUP BY DISTINCT a HAVING count(*) > 1",
		"SELECT * FROM a JOIN b ON a.id = b.id LEFT JOIN c USING (id) CROSS JOIN d",
		"SELECT * FROM a NATURAL FULL JOIN b",
		"SELECT * FROM (SELECT 1) s(x), LATERAL generate_series(1, x) g",
		"SELECT * FROM ROWS FROM (generate_series(1, 2), unnest(ARRAY[1])) WITH ORDINALITY AS r(a, b, n)",
		"SELECT * FROM t TABLESAMPLE bernoulli (10) REPEATABLE (1)",
		"WITH RECURSIVE r(n) AS (SELECT 1 UNION ALL SELECT n + 1 FROM r WHERE n < 10) SELECT n FROM r",
		"WITH x AS MATERIALIZED (SELECT 1) SELECT * FROM x",
		"(SELECT a FROM t ORDER BY a LIMIT 1) UNION (SELECT b FROM u)",
		"SELECT 1 EXCEPT SELECT 2 INTERSECT SELECT 3",
		"VALUES (1, 'a'), (2, 'b')",
		"SELECT a FROM t ORDER BY a FETCH FIRST 5 ROWS WITH TIES",
		"SELECT a FROM t LIMIT ALL OFFSET 5",
		"SELECT a FROM t FOR UPDATE OF t SKIP LOCKED",
		"SELECT a FROM t FOR NO KEY UPDATE NOWAIT",
		"SELECT a INTO TEMP new_t FROM t",
		// DML
		"INSERT INTO t AS x (a) SELECT b FROM u ON CONFLICT (a) DO UPDATE SET a = excluded.a WHERE x.a > 0",
		"INSERT INTO t (a) VALUES (1) ON CONFLICT ON CONSTRAINT t_pkey DO NOTHING",
		"INSERT INTO t OVERRIDING SYSTEM VALUE VALUES (DEFAULT)",
		"UPDATE t SET a[1] = 2, b.c = 3 FROM u WHERE t.id = u.id RETURNING *",
		"UPDATE t SET (a, b) = (SELECT 1, 2), c = 3",
		"DELETE FROM t USING u WHERE t.id = u.id RETURNING t.id",
		"DELETE FROM t WHERE CURRENT OF c",
		"WITH d AS (DELETE FROM t RETURNING *) INSERT INTO u SELECT * FROM d",
		"COPY t (a, b) FROM STDIN WITH (FORMAT csv, HEADER true)",
		"COPY (SELECT 1) TO '/tmp/out'",
		// DDL
		"CREATE TABLE t (id bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY, name text NOT NULL DEFAULT 'x', CONSTRAINT c CHECK (length(name) > 0))",
		"CREATE TEMP TABLE IF NOT EXISTS t (a int UNIQUE, b int REFERENCES u (id) ON DELETE CASCADE) ON COMMIT DROP",
		"CREATE UNLOGGED TABLE t (a int, b int, PRIMARY KEY (a, b) INCLUDE (c), UNIQUE NULLS NOT DISTINCT (b))",
		"CREATE TABLE t (a int, FOREIGN KEY (a) REFERENCES u (id) MATCH FULL ON UPDATE SET NULL DEFERRABLE INITIALLY DEFERRED)",
		"CREATE TABLE t (a int, EXCLUDE USING gist (a WITH =) WHERE (a > 0))",
		"CREATE TABLE t (a int CHECK (a > 0) NO INHERIT, b text COLLATE \"C\", c int GENERATED ALWAYS AS (a * 2) STORED)",
		"CREATE TABLE t (LIKE u INCLUDING ALL)",
		"CREATE TABLE t (LIKE u INCLUDING DEFAULTS INCLUDING INDEXES)",
		"CREATE TABLE t (a int) PARTITION BY RANGE (a)",
		"CREATE TABLE t1 PARTITION OF t FOR VALUES FROM (1) TO (10)",
		"CREATE TABLE t2 PARTITION OF t FOR VALUES IN (1, 2)",
		"CREATE TABLE t3 PARTITION OF t FOR VALUES WITH (MODULUS 4, REMAINDER 0)",
		"CREATE TABLE t4 PARTITION OF t DEFAULT",
		"CREATE TABLE c (b int) INHERITS (p)",
		"CREATE TABLE t OF my_type",
		"CREATE TABLE t (a int) WITH (fillfactor=70) TABLESPACE ts",
		"CREATE TABLE t (a int) USING heap",
		"CREATE FOREIGN TABLE ft (a int OPTIONS (column_name 'x')) SERVER srv OPTIONS (table_name 'y')",
		"CREATE TABLE t AS SELECT 1 WITH NO DATA",
		"CREATE MATERIALIZED VIEW mv AS SELECT 1",
		"REFRESH MATERIALIZED VIEW CONCURRENTLY mv",
		"ALTER TABLE t ADD COLUMN IF NOT EXISTS c int, DROP COLUMN IF EXISTS d CASCADE",
		"ALTER TABLE t ALTER COLUMN a SET DEFAULT 1, ALTER COLUMN b DROP DEFAULT",
		"ALTER TABLE t ALTER COLUMN a SET NOT NULL, ALTER COLUMN b DROP NOT NULL",
		"ALTER TABLE t ALTER COLUMN a TYPE bigint USING a::bigint",
		"ALTER TABLE t ADD CONSTRAINT c CHECK (a > 0) NOT VALID",
		"ALTER TABLE t VALIDATE CONSTRAINT c",
		"ALTER TABLE t DROP CONSTRAINT IF EXISTS c",
		"ALTER TABLE t ALTER COLUMN a ADD GENERATED BY DEFAULT AS IDENTITY",
		"ALTER TABLE t ALTER COLUMN a SET STATISTICS 100",
		"ALTER TABLE t OWNER TO bob",
		"ALTER TABLE t SET (fillfactor=50)",
		"ALTER TABLE t RESET (fillfactor)",
		"ALTER TABLE t ENABLE ROW LEVEL SECURITY",
		"ALTER TABLE t REPLICA IDENTITY FULL",
		"ALTER TABLE t ATTACH PARTITION t5 FOR VALUES FROM (10) TO (20)",
		"ALTER TABLE t DETACH PARTITION t5",
		"ALTER TABLE IF EXISTS ONLY t SET SCHEMA s",
		"ALTER TABLE t RENAME TO u",
		"ALTER TABLE t RENAME COLUMN a TO b",
		"ALTER TYPE ty ADD ATTRIBUTE a int",
		"CREATE INDEX CONCURRENTLY IF NOT EXISTS i ON t USING gin (a)",
		"CREATE UNIQUE INDEX i ON t (lower(a), b DESC NULLS FIRST) INCLUDE (c) WHERE b > 0",
		"CREATE INDEX ON t ((a + b))",
		"CREATE OR REPLACE VIEW v (a) AS SELECT 1 WITH CASCADED CHECK OPTION",
		"CREATE SEQUENCE IF NOT EXISTS s INCREMENT BY 2 MINVALUE 1 NO MAXVALUE START WITH 5 CACHE 10 CYCLE",
		"CREATE SCHEMA IF NOT EXISTS s AUTHORIZATION bob",
		"CREATE SCHEMA s CREATE TABLE t (a int) CREATE VIEW v AS SELECT 1",
		"CREATE FUNCTION f(a int, OUT b text) RETURNS SETOF record LANGUAGE sql IMMUTABLE STRICT AS $$SELECT 1$$",
		"CREATE OR REPLACE FUNCTION f(VARIADIC a int[] DEFAULT '{}') RETURNS TABLE (x int) LANGUAGE plpgsql SECURITY DEFINER COST 10 AS 'begin end'",
		"CREATE PROCEDURE p() LANGUAGE sql BEGIN ATOMIC SELECT 1; SELECT 2; END",
		"CREATE TRIGGER tr BEFORE INSERT OR UPDATE OF a ON t FOR EACH ROW WHEN (new.a > 0) EXECUTE FUNCTION f('x')",
		"CREATE TRIGGER tr AFTER DELETE ON t REFERENCING OLD TABLE AS o FOR EACH STATEMENT EXECUTE FUNCTION f()",
		"CREATE DOMAIN d AS int CONSTRAINT pos CHECK (VALUE > 0) NOT NULL",
		"CREATE TYPE e AS ENUM ('a', 'b')",
		"CREATE TYPE r AS RANGE (subtype = int4)",
		"CREATE TYPE c AS (a int, b text)",
		"CREATE EXTENSION IF NOT EXISTS hstore WITH SCHEMA s VERSION '1.0' CASCADE",
		"ALTER EXTENSION hstore UPDATE TO '2.0'",
		"ALTER EXTENSION hstore ADD FUNCTION f(int)",
		"CREATE DATABASE db WITH OWNER bob ENCODING 'UTF8' CONNECTION LIMIT 10",
		"ALTER DATABASE db SET search_path TO public",
		"ALTER DATABASE db CONNECTION LIMIT 5",
		"DROP DATABASE IF EXISTS db WITH (FORCE)",
		"CREATE TABLESPACE ts OWNER bob LOCATION '/data'",
		"DROP TABLESPACE IF EXISTS ts",
		"ALTER TABLESPACE ts SET (seq_page_cost=1)",
		"CREATE CAST (int AS text) WITH FUNCTION f(int) AS IMPLICIT",
		"CREATE AGGREGATE agg(int) (sfunc = f, stype = int)",
		"CREATE OPERATOR === (leftarg = int, rightarg = int, function = f)",
		"DROP FUNCTION IF EXISTS f(int), g() CASCADE",
		"DROP AGGREGATE agg(int)",
		"DROP OPERATOR ===(int, int)",
		"DROP INDEX CONCURRENTLY i",
		"DROP TYPE IF EXISTS ty",
		"DROP TRIGGER tr ON t",
		"DROP CAST (int AS text)",
		"DROP ROLE IF EXISTS a, b",
		"DROP SUBSCRIPTION IF EXISTS sub CASCADE",
		"GRANT SELECT, UPDATE (a, b) ON TABLE t TO bob, PUBLIC WITH GRANT OPTION",
		"GRANT ALL ON ALL TABLES IN SCHEMA s TO bob",
		"GRANT USAGE ON SCHEMA s TO bob GRANTED BY CURRENT_USER",
		"GRANT EXECUTE ON FUNCTION f(int) TO bob",
		"REVOKE GRANT OPTION FOR SELECT ON t FROM bob CASCADE",
		"GRANT admin TO bob WITH ADMIN OPTION",
		"REVOKE admin FROM bob",
		"ALTER FUNCTION f(int) RENAME TO g",
		"ALTER INDEX i RENAME TO j",
		"ALTER TRIGGER tr ON t RENAME TO tr2",
		"ALTER SCHEMA s RENAME TO s2",
		"ALTER TABLE t SET SCHEMA s",
		"ALTER FUNCTION f(int) SET SCHEMA s",
		"ALTER FUNCTION f(int) DEPENDS ON EXTENSION e",
		"COMMENT ON TABLE t IS 'a table'",
		"COMMENT ON COLUMN t.a IS NULL",
		"COMMENT ON FUNCTION f(int) IS 'fn'",
		// Utility
		"DO $$BEGIN END$$",
		"DO LANGUAGE plpgsql 'BEGIN END'",
		"DISCARD ALL",
		"PREPARE p (int) AS SELECT $1",
		"EXECUTE p (1)",
		"DEALLOCATE ALL",
		"DEALLOCATE p",
		"EXPLAIN (ANALYZE, FORMAT json) SELECT 1",
		"EXPLAIN SELECT 1",
		"LOAD 'lib'",
		"LOCK TABLE t IN SHARE MODE NOWAIT",
		"LOCK t",
		"START TRANSACTION ISOLATION LEVEL SERIALIZABLE, READ ONLY, DEFERRABLE",
		"ROLLBACK TO SAVEPOINT sp",
		"RELEASE sp",
		"PREPARE TRANSACTION 'g'",
		"COMMIT PREPARED 'g'",
		"VACUUM (FULL, ANALYZE) t (a, b), u",
		"ANALYZE t",
		"SET search_path TO public, s",
		"SET LOCAL statement_timeout = 5",
		"SET TIME ZONE 'UTC'",
		"SET search_path TO DEFAULT",
		"SET search_path FROM CURRENT",
		"SET TRANSACTION ISOLATION LEVEL READ COMMITTED",
		"SET SESSION CHARACTERISTICS AS TRANSACTION READ ONLY",
		"RESET search_path",
		"RESET ALL",
		"SHOW search_path",
		"SHOW ALL",
		"ALTER SYSTEM SET work_mem = '64MB'",
		"TRUNCATE ONLY t, u RESTART IDENTITY CASCADE",
		"LISTEN chan",
		"UNLISTEN *",
		"NOTIFY chan, 'payload'",
		"CLOSE ALL",
		"CLOSE c",
		"CALL p(1, 'x')",
	}

	for _, sql := range tests {
		t.Run(sql, func(t *testing.T) {
			roundTrip(t, sql)
		})
	}
}

func TestRenderParallel(t *testing.T) {
	sql := "SELECT 1; INSERT INTO t VALUES (1); UPDATE t SET a = 2; DELETE FROM t; CREATE TABLE u (a int); DROP TABLE u"
	nodes, err := jsontree.ParseSQL(sql)
	require.NoError(t, err)

	sequential, err := deparse.Render(nodes)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 2, 8} {
		parallel, err := deparse.RenderParallel(context.Background(), nodes, workers)
		require.NoError(t, err)
		assert.Equal(t, sequential, parallel, "workers=%d", workers)
	}
}

func TestRenderParallelCancelled(t *testing.T) {
	nodes, err := jsontree.ParseSQL("SELECT 1; SELECT 2")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = deparse.RenderParallel(ctx, nodes, 4)
	assert.ErrorIs(t, err, context.Canceled)
}
