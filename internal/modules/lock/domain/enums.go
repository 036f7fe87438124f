//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// LockType is a content category a chat can forbid
// ENUM(photo,video,audio,voice,document,sticker,animation,videonote,contact,location,venue,poll,game,dice,forward,forwarduser,forwardchannel,url,invite,commands,mention,hashtag,cashtag,email,phone,spoiler,customemoji,text,rtl,inline,anonchannel)
type LockType string

// LockCategory groups lock types for display
// ENUM(content,forward,url,text,entity,other)
type LockCategory string

// AllowlistType selects what an allowlist entry matches
// ENUM(url,domain,command)
type AllowlistType string
