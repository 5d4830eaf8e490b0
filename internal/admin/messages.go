package admin

// Confirmation prompts.
const (
	PromptSendInvite    = "Send an invitation to this user?"
	PromptChangeRole    = "Change this member's role?"
	PromptKick          = "Remove this member from the project?"
	PromptDeleteProject = "Delete this project?"
)

// Notifications.
const (
	MsgInviteSent      = "Invitation sent."
	MsgRoleChanged     = "Role changed."
	MsgMemberKicked    = "Member removed."
	MsgInviteFailed    = "Failed to send the invitation."
	MsgRoleFailed      = "Failed to change the role."
	MsgKickFailed      = "Failed to remove the member."
	MsgAcceptFailed    = "Failed to accept the invitation."
	MsgDeclineFailed   = "Failed to decline the invitation."
	MsgDirectoryFailed = "Failed to load the user directory."
	MsgReloadFailed    = "Failed to refresh the page."
	MsgUpdateFailed    = "Failed to update the project."
	MsgDeleteFailed    = "Failed to delete the project."
)
