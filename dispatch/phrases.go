package dispatch

import "strconv"

func countTasks(n int) string {
	if n == 1 {
		return "1 task"
	}
	return strconv.Itoa(n) + " tasks"
}

func countPendingTasks(n int) string {
	if n == 1 {
		return "1 pending task"
	}
	return strconv.Itoa(n) + " pending tasks"
}

// ordinal renders the "1) " list prefix for the i-th task.
func ordinal(i int) string {
	return strconv.Itoa(i+1) + ") "
}
