package main

import "github.com/AnmoL11221/Voice-Task-Planner/dispatch"

type ReplyMsg struct {
	reply dispatch.Reply
}
