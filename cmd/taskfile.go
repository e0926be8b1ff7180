package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/schedsim/schedsim/sched"
)

// loadTaskSet reads a CSV task file where each line is "O,C,D,T" (offset,
// computation time, deadline, period). Task IDs are assigned by
// zero-based line index and named Task_<i>, matching the reference
// tool's convention.
func loadTaskSet(path string) (*sched.TaskSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading task file %q: %w", path, err)
	}

	var tasks []*sched.Task
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for i := 0; scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		task, err := parseTaskLine(i, line)
		if err != nil {
			return nil, fmt.Errorf("task file %q, line %d: %w", path, i+1, err)
		}
		tasks = append(tasks, task)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading task file %q: %w", path, err)
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("task file %q contains no tasks", path)
	}

	return sched.NewTaskSet(tasks), nil
}

func parseTaskLine(index int, line string) (*sched.Task, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 {
		return nil, fmt.Errorf("expected 4 comma-separated fields (O,C,D,T), got %d", len(fields))
	}

	values := make([]int64, 4)
	for i, field := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d (%q) is not an integer: %w", i, field, err)
		}
		values[i] = v
	}

	offset, computation, deadline, period := values[0], values[1], values[2], values[3]
	name := fmt.Sprintf("Task_%d", index)
	return sched.NewTask(index, name, offset, computation, deadline, period)
}
