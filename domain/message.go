// Package domain contains core concepts of the chat server.
// This file defines the wire format: every byte written to a client
// is produced by one of these constants or formatters.
package domain

import "fmt"

// Bootstrap prompts and replies. The prompts deliberately carry no trailing
// newline: the client answers on the same line.
const (
	PromptUsername = "Enter username: "
	PromptPassword = "Enter password: "

	ReplyWelcome    = "Welcome to the chat server!\n"
	ReplyAuthFailed = "Error: Authentication failed.\n"
	ReplyGoodbye    = "Goodbye.\n"

	ReplyEmptyMessage   = "Error: Message cannot be empty.\n"
	ReplyUnknownCommand = "Error: Unknown command.\n"

	ReplyDirectUsage    = "Error: Incorrect format. Use: /msg <username> <message>\n"
	ReplyDirectEmpty    = "Error: Private message content is empty.\n"
	ReplySelfMessage    = "Error: Cannot send a private message to yourself.\n"
	ReplyBroadcastUsage = "Error: Incorrect format. Use: /broadcast <message>\n"
	ReplyBroadcastEmpty = "Error: Broadcast message content is empty.\n"

	ReplyCreateGroupUsage = "Error: Incorrect format. Use: /create_group <group name>\n"
	ReplyJoinGroupUsage   = "Error: Incorrect format. Use: /join_group <group name>\n"
	ReplyGroupMsgUsage    = "Error: Incorrect format. Use: /group_msg <group name> <message>\n"
	ReplyLeaveGroupUsage  = "Error: Incorrect format. Use: /leave_group <group name>\n"
	ReplyGroupNameEmpty   = "Error: Group name cannot be empty.\n"
	ReplyGroupNameSpaces  = "Error: Group name must not contain spaces.\n"
	ReplyGroupMsgEmpty    = "Error: Group message content is empty.\n"
)

func FormatDirect(from, body string) string {
	return fmt.Sprintf("[%s]: %s\n", from, body)
}

func FormatBroadcast(from, body string) string {
	return fmt.Sprintf("[%s] (Broadcast): %s\n", from, body)
}

func FormatGroup(group, body string) string {
	return fmt.Sprintf("[Group %s]: %s\n", group, body)
}

func FormatJoined(username string) string {
	return fmt.Sprintf("%s has joined the chat.\n", username)
}

func FormatLeft(username string) string {
	return fmt.Sprintf("%s has left the chat.\n", username)
}

func FormatAlreadyConnected(username string) string {
	return fmt.Sprintf("Error: User %q is already connected.\n", username)
}

func FormatUserNotFound(username string) string {
	return fmt.Sprintf("Error: User %q not found.\n", username)
}

func FormatGroupCreated(name string) string {
	return fmt.Sprintf("Group %q created successfully.\n", name)
}

func FormatGroupExists(name string) string {
	return fmt.Sprintf("Error: Group %q already exists.\n", name)
}

func FormatGroupJoined(name string) string {
	return fmt.Sprintf("Joined group %q successfully.\n", name)
}

func FormatGroupLeft(name string) string {
	return fmt.Sprintf("Left group %q successfully.\n", name)
}

func FormatNoSuchGroup(name string) string {
	return fmt.Sprintf("Error: Group %q does not exist.\n", name)
}

func FormatAlreadyMember(name string) string {
	return fmt.Sprintf("Error: Already a member of group %q.\n", name)
}

func FormatNotMember(name string) string {
	return fmt.Sprintf("Error: Not a member of group %q.\n", name)
}
