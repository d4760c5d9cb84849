package cli

import (
	"context"
	"io"
	"math/rand/v2"

	"github.com/alexanderramin/practicelog/internal/timer"
)

// bellNotifier rings the terminal bell when a countdown runs out.
func bellNotifier(w io.Writer) timer.CompletionNotifier {
	return timer.NotifierFunc(func(context.Context, timer.Record) error {
		_, err := io.WriteString(w, "\a")
		return err
	})
}

var quotes = []string{
	"Meditation is not evasion; it is a serene encounter with reality. (Thich Nhat Hanh)",
	"The thing about meditation is: you become more and more you. (David Lynch)",
	"Quiet the mind, and the soul will speak. (Ma Jaya Sati Bhagavati)",
	"Meditation is the discovery that the point of life is always arrived at in the immediate moment. (Alan Watts)",
	"Inhale the future, exhale the past.",
	"The goal of meditation isn't to control your thoughts, it's to stop letting them control you.",
	"Within you there is a stillness and a sanctuary to which you can retreat at any time. (Hermann Hesse)",
	"Meditation is the tongue of the soul and the language of our spirit. (Jeremy Taylor)",
	"The quieter you become, the more you can hear. (Ram Dass)",
	"You should sit in meditation for twenty minutes every day, unless you're too busy; then you should sit for an hour. (Zen proverb)",
}

// RandomQuote returns one of the closing quotes.
func RandomQuote() string {
	return quotes[rand.IntN(len(quotes))]
}
