package webhook

import (
	"time"

	"github.com/heartmarshall/heart-approvals/internal/domain"
)

// envelope is the Cloud API webhook body:
// entry[].changes[].value.{contacts,messages,reactions}.
type envelope struct {
	Object string  `json:"object"`
	Entry  []entry `json:"entry"`
}

type entry struct {
	ID      string   `json:"id"`
	Changes []change `json:"changes"`
}

type change struct {
	Field string `json:"field"`
	Value value  `json:"value"`
}

type value struct {
	Contacts  []contact  `json:"contacts"`
	Messages  []message  `json:"messages"`
	Reactions []reaction `json:"reactions"`
}

type contact struct {
	WaID    string  `json:"wa_id"`
	Profile profile `json:"profile"`
}

type profile struct {
	Name string `json:"name"`
}

type message struct {
	ID       string    `json:"id"`
	From     string    `json:"from"`
	Type     string    `json:"type"`
	GroupID  string    `json:"group_id"`
	Profile  *profile  `json:"profile"`
	Text     *textBody `json:"text"`
	Image    *media    `json:"image"`
	Video    *media    `json:"video"`
	Document *media    `json:"document"`
	Reaction *reaction `json:"reaction"`
}

type textBody struct {
	Body string `json:"body"`
}

type media struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type"`
	Filename string `json:"filename"`
}

// reaction appears nested in a message of type "reaction" and as a
// top-level entry of value.reactions. From and GroupID are only set on the latter.
type reaction struct {
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
	From      string `json:"from"`
	Action    string `json:"action"`
	GroupID   string `json:"group_id"`
}

const typeReaction = "reaction"

// toDelivery flattens every change of the envelope into one Delivery.
// Entries are converted as-is; validation happens where they are handled.
func (e envelope) toDelivery(id string, receivedAt time.Time) domain.Delivery {
	d := domain.Delivery{ID: id, ReceivedAt: receivedAt}

	for _, en := range e.Entry {
		for _, ch := range en.Changes {
			names := contactNames(ch.Value.Contacts)

			for _, m := range ch.Value.Messages {
				if m.Type == typeReaction {
					d.Reactions = append(d.Reactions, m.reactionEvent())
					continue
				}
				d.Messages = append(d.Messages, m.messageEvent(names))
			}

			for _, r := range ch.Value.Reactions {
				d.Reactions = append(d.Reactions, r.event(r.From, r.GroupID))
			}
		}
	}

	return d
}

func contactNames(contacts []contact) map[string]string {
	names := make(map[string]string, len(contacts))
	for _, c := range contacts {
		if c.Profile.Name != "" {
			names[c.WaID] = c.Profile.Name
		}
	}
	return names
}

func (m message) messageEvent(names map[string]string) domain.MessageEvent {
	ev := domain.MessageEvent{
		MessageID:  m.ID,
		SenderID:   m.From,
		SenderName: names[m.From],
		IsGroup:    m.GroupID != "",
		Kind:       domain.MessageKindUnsupported,
	}
	if m.Profile != nil && m.Profile.Name != "" {
		ev.SenderName = m.Profile.Name
	}

	var md *media
	switch m.Type {
	case "text":
		ev.Kind = domain.MessageKindText
		if m.Text != nil {
			ev.Text = m.Text.Body
		}
		return ev
	case "image":
		ev.Kind, md = domain.MessageKindImage, m.Image
	case "video":
		ev.Kind, md = domain.MessageKindVideo, m.Video
	case "document":
		ev.Kind, md = domain.MessageKindDocument, m.Document
	default:
		return ev
	}

	if md != nil {
		ev.MediaRef = md.ID
		ev.MediaMime = md.MimeType
		ev.Filename = md.Filename
	}
	return ev
}

func (m message) reactionEvent() domain.ReactionEvent {
	if m.Reaction == nil {
		return domain.ReactionEvent{ActorID: m.From, OriginGroupID: m.GroupID}
	}
	return m.Reaction.event(m.From, m.GroupID)
}

// event converts a reaction; without an explicit action an empty emoji
// means the reaction was withdrawn.
func (r reaction) event(actor, groupID string) domain.ReactionEvent {
	action := domain.ReactionAction(r.Action)
	if r.Action == "" {
		action = domain.ReactionAdded
		if r.Emoji == "" {
			action = domain.ReactionRemoved
		}
	}

	return domain.ReactionEvent{
		TargetMessageID: r.MessageID,
		ActorID:         actor,
		Emoji:           r.Emoji,
		Action:          action,
		OriginGroupID:   groupID,
	}
}
