//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// ContentType tags the primary payload of a message
// ENUM(text,photo,video,audio,voice,document,sticker,animation,video_note,contact,location,venue,poll,game,dice,other)
type ContentType string

// EntityKind is the kind of a formatted span inside message text
// ENUM(mention,text_mention,hashtag,cashtag,bot_command,url,text_link,email,phone_number,spoiler,custom_emoji,other)
type EntityKind string

// ForwardKind describes where a forwarded message came from
// ENUM(user,hidden_user,chat,channel)
type ForwardKind string
