package audio

// defaultPattern plays for any name without its own pattern
var defaultPattern = rhythm(120, `
	kick  hihat hihat hihat
	snare hihat hihat hihat
	kick  hihat kick  hihat
	snare hihat hihat hihat`, "")

// genrePatterns holds the built-in genre beats; every pattern runs 2 bars
var genrePatterns = map[string]*RhythmPattern{
	"Pop": rhythm(120, `
		kick        hihat hihat hihat
		snare+hihat hihat hihat hihat
		kick        hihat kick  hihat
		snare+hihat hihat hihat hihat`,
		"0:65 4:82 8:73 12:82"),

	"Hip-Hop": rhythm(90, `
		kick  .     hihat .
		snare .     hihat kick
		.     hihat kick  .
		snare .     hihat hihat`,
		"0:55:0.4 7:55:0.3 10:62:0.3"),

	"Trap": rhythm(140, `
		kick        hihat hihat hihat
		snare+hihat hihat hihat hihat
		hihat       hihat kick  hihat
		snare+hihat hihat hihat hihat`,
		"0:40:0.6 10:40:0.4"),

	"Drill": rhythm(145, `
		kick        hihat hihat      kick
		snare+hihat hihat hihat      hihat
		kick        hihat hihat      hihat
		snare+hihat hihat kick+hihat hihat`,
		"0:44:0.5 3:49:0.3 8:44:0.5"),

	"Funk": rhythm(115, `
		kick        hihat hihat      kick+hihat
		snare+hihat hihat kick+hihat hihat
		kick        hihat hihat      hihat
		snare+hihat hihat kick+hihat hihat`,
		"0:73 3:82 6:65 8:73 11:82 14:65"),

	"Amapiano": rhythm(115, `
		kick      shaker hihat shaker
		kick+clap shaker hihat shaker
		kick      shaker hihat shaker
		kick+clap shaker hihat shaker`,
		"0:55:0.5 4:62:0.5 8:49:0.5 12:55:0.5"),

	"Afrobeats": rhythm(108, `
		kick  shaker conga shaker
		snare shaker conga kick+shaker
		conga shaker kick  shaker
		snare shaker conga shaker`,
		"0:65 7:73 10:82"),

	"Hyperpop": rhythm(160, `
		kick+hihat       hihat hihat      hihat
		snare+clap+hihat hihat hihat      hihat
		kick+hihat       hihat kick+hihat hihat
		snare+clap+hihat hihat hihat      hihat`,
		"0:55:0.2 2:62:0.2 8:49:0.2 10:55:0.2"),

	"R&B / Soul": rhythm(80, `
		kick        hihat hihat hihat
		snare+hihat hihat hihat hihat
		kick        hihat kick  hihat
		snare+hihat hihat hihat hihat`,
		"0:55:0.6 4:65:0.4 8:73:0.4 12:65:0.6"),

	"Jazz": rhythm(140, `
		rim . hihat .
		rim . hihat .
		rim . hihat .
		rim . hihat rim`,
		"0:65 4:73 8:82 12:73"),

	"Blues": rhythm(80, `
		kick  . hihat .
		snare . hihat .
		kick  . hihat kick
		snare . hihat .`,
		"0:55:0.6 4:65:0.4 8:73:0.4 12:65:0.6"),

	"Electronic / EDM": rhythm(128, `
		kick      hihat kick+hihat hihat
		kick+clap hihat kick+hihat hihat
		kick      hihat kick+hihat hihat
		kick+clap hihat kick+hihat hihat`,
		"0:55:0.3 4:55:0.3 8:55:0.3 12:55:0.3"),

	"House": rhythm(124, `
		kick      hihat kick hihat
		kick+clap hihat kick hihat
		kick      hihat kick hihat
		kick+clap hihat kick hihat`,
		"0:55:0.4 8:65:0.4"),

	"Techno": rhythm(135, `
		kick     hihat kick hihat
		kick+rim hihat kick hihat
		kick     hihat kick hihat
		kick+rim hihat kick hihat`,
		""),

	"Drum & Bass": rhythm(174, `
		kick  hihat hihat hihat
		snare hihat kick  hihat
		hihat kick  hihat hihat
		snare hihat kick  hihat`,
		"0:40:0.3 6:40:0.2 9:45:0.2"),

	"Lo-fi": rhythm(78, `
		kick  .     hihat .
		snare .     hihat .
		kick  hihat .     .
		snare .     hihat .`,
		"0:55:0.5 4:65:0.5 8:73:0.3"),

	"Reggaeton": rhythm(92, `
		kick  . hihat kick
		snare . hihat kick
		.     . hihat kick
		snare . hihat .`,
		"0:55:0.3 3:55:0.2 7:55:0.2 11:55:0.2"),

	"Dancehall": rhythm(100, `
		kick  shaker hihat shaker
		snare shaker hihat kick+shaker
		.     shaker hihat shaker
		snare shaker hihat shaker`,
		""),

	"Reggae": rhythm(75, `
		.          . rim .
		kick+snare . rim .
		.          . rim .
		kick+snare . rim .`,
		"0:55:0.5 4:65:0.4 8:73:0.4 12:65:0.4"),

	"Synthwave / Retrowave": rhythm(100, `
		kick       hihat hihat hihat
		snare+clap hihat hihat hihat
		kick       hihat kick  hihat
		snare+clap hihat hihat hihat`,
		""),

	"Phonk": rhythm(140, `
		kick+cowbell  hihat cowbell      hihat
		snare+cowbell hihat cowbell      hihat
		kick+cowbell  hihat kick+cowbell hihat
		snare+cowbell hihat cowbell      hihat`,
		"0:40:0.5 10:40:0.3"),

	"Brazilian Funk (Funk Carioca)": rhythm(135, `
		kick  hihat kick hihat
		snare hihat .    kick+hihat
		kick  hihat kick hihat
		snare hihat kick hihat`,
		"0:50:0.3 2:50:0.2 7:55:0.2 10:50:0.3"),

	"Highlife": rhythm(115, `
		kick  shaker hihat shaker
		snare shaker hihat shaker
		kick  shaker kick  shaker
		snare shaker hihat shaker`,
		"0:65 4:82 8:73 12:82"),

	"Soukous / Congolese Rumba": rhythm(140, `
		kick+conga  shaker conga shaker
		snare+conga shaker conga shaker
		kick+conga  shaker conga shaker
		snare+conga shaker conga kick+shaker`,
		"0:65 4:73 8:82 12:73"),

	"Gqom": rhythm(124, `
		kick . kick .
		clap . .    kick
		kick . kick .
		clap . .    .`,
		"0:40:0.6 7:40:0.4"),

	"Kwaito": rhythm(110, `
		kick hihat kick hihat
		clap hihat .    hihat
		kick hihat kick hihat
		clap hihat .    hihat`,
		"0:50:0.5 4:55:0.4 8:50:0.5"),

	"Bongo Flava": rhythm(105, `
		kick  shaker hihat shaker
		snare shaker hihat shaker
		kick  shaker kick  shaker
		snare shaker hihat shaker`,
		""),

	"Cumbia": rhythm(95, `
		kick  shaker conga shaker
		snare shaker conga shaker
		kick  shaker conga shaker
		snare shaker conga shaker`,
		"0:55 4:65 8:73 12:65"),

	"Sega / Maloya": rhythm(120, `
		conga      shaker conga shaker
		conga+clap shaker conga shaker
		conga      shaker conga shaker
		conga+clap shaker conga shaker`,
		""),

	"Gnawa / Moroccan": rhythm(100, `
		tom rim rim .
		tom rim .   rim
		tom .   rim rim
		tom rim .   rim`,
		"0:55:0.4 4:55:0.4 8:62:0.4 12:55:0.4"),

	"Kuduro": rhythm(135, `
		kick      hihat kick hihat
		clap+kick hihat kick hihat
		kick      hihat kick hihat
		clap+kick hihat kick hihat`,
		"0:50:0.3 2:55:0.2 8:50:0.3"),

	"Calypso / Soca": rhythm(145, `
		kick          hihat hihat hihat
		snare+cowbell hihat hihat hihat
		kick          hihat kick  hihat
		snare+cowbell hihat hihat hihat`,
		""),

	"Rock": rhythm(120, `
		kick+hihat  hihat hihat      hihat
		snare+hihat hihat hihat      hihat
		kick+hihat  hihat kick+hihat hihat
		snare+hihat hihat hihat      hihat`,
		""),

	"Country": rhythm(110, `
		kick  hihat hihat hihat
		snare hihat hihat hihat
		kick  hihat kick  hihat
		snare hihat hihat hihat`,
		""),

	"Gospel": rhythm(100, `
		kick       hihat hihat hihat
		snare+clap hihat hihat hihat
		kick       hihat kick  hihat
		snare+clap hihat hihat hihat`,
		""),

	"Latin / Salsa": rhythm(180, `
		conga   .       cowbell conga
		.       cowbell conga   .
		cowbell conga   .       cowbell
		conga   .       cowbell conga`,
		"0:73 3:82 6:65 9:73 12:82"),

	"Classical": rhythm(100, `
		tom . .   .
		.   . rim .
		.   . .   .
		tom . .   .`,
		"0:65:0.8 6:73:0.6 12:55:0.8"),
}
