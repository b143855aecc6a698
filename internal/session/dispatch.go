package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/obops/obadmin/internal/menu"
)

func trimmed(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// dispatch resolves the chosen item into a statement, applies the
// destructive-statement gate, executes, and routes the outcome. Execution
// failures are reported and return control to the menu; they never end the
// session.
func (s *Session) dispatch(ctx context.Context, it menu.Item) {
	stmt, ok := s.resolveStatement(it)
	if !ok {
		return
	}

	if ContainsDangerous(stmt) {
		answer, err := s.In.ReadLine("Potentially destructive statement detected. Execute? (yes/NO): ")
		if err != nil || !affirmative(answer) {
			s.notice("Cancelled.")
			return
		}
	}

	start := time.Now()
	out, err := s.DB.Run(ctx, stmt)
	if err != nil {
		fmt.Fprintf(s.Out, "\nExecution failed: %v\n", err)
		_, _ = s.In.ReadLine("Press Enter to continue...")
		return
	}
	fmt.Fprintf(s.Out, "\n-- elapsed: %.3fs | statement length: %d\n",
		time.Since(start).Seconds(), len(stmt))

	if out.ReturnedRows() {
		s.newPager().Run(out.Rows)
		return
	}
	s.notice(fmt.Sprintf("OK, %d row(s) affected.", out.Affected))
}

// resolveStatement turns a menu item into executable SQL, prompting the user
// as the item kind requires. ok is false when nothing should execute.
func (s *Session) resolveStatement(it menu.Item) (stmt string, ok bool) {
	switch it.Kind {
	case menu.Simple:
		stmt = it.Statement
	case menu.ParameterTemplate:
		fmt.Fprintf(s.Out, "\n--- %s ---\n", it.Title)
		param, err := s.In.ReadLine("Parameter value (default %): ")
		if err != nil {
			return "", false
		}
		param = strings.TrimSpace(param)
		if param == "" {
			param = "%"
		}
		stmt = strings.ReplaceAll(it.Template, menu.Placeholder, param)
	case menu.Custom:
		var err error
		stmt, err = s.readCustomSQL()
		if err != nil {
			return "", false
		}
	}

	stmt = strings.TrimSuffix(strings.TrimSpace(stmt), ";")
	if strings.TrimSpace(stmt) == "" {
		s.notice("No SQL entered.")
		return "", false
	}
	return stmt, true
}

// readCustomSQL collects free-form statement text. Input ends at a blank
// line or a line ending in a semicolon.
func (s *Session) readCustomSQL() (string, error) {
	fmt.Fprintln(s.Out, "\nEnter SQL (finish with ';' or a blank line):")
	var lines []string
	for {
		line, err := s.In.ReadLine("SQL> ")
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
		if strings.HasSuffix(strings.TrimSpace(line), ";") {
			break
		}
	}
	return strings.Join(lines, "\n"), nil
}
