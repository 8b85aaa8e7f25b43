package seed

import (
	"time"

	"ncgames/internal/http-api/models"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.DateTime, s)
	if err != nil {
		panic(err)
	}
	return t
}

const loremBody = "Fugiat fugiat enim officia laborum quis. Aliquip laboris non nulla nostrud magna exercitation in ullamco aute laborum cillum nisi sint."

// TestData is the fixture set used by the integration suite and `ncgames seed`.
// Reviews and comments are inserted in slice order, so review N gets review_id N.
func TestData() Data {
	img := defaultReviewImgURL
	return Data{
		Categories: []models.Category{
			{Slug: "euro game", Description: "Abstact games that involve little luck"},
			{Slug: "social deduction", Description: "Players attempt to uncover each other's hidden role"},
			{Slug: "dexterity", Description: "Games involving physical skill"},
			{Slug: "children's games", Description: "Games suitable for children"},
		},
		Users: []models.User{
			{Username: "mallionaire", Name: "haz", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "philippaclaire9", Name: "philippa", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
			{Username: "bainesface", Name: "sarah", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
			{Username: "dav3rid", Name: "dave", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
		},
		Reviews: []models.Review{
			{Title: "Agricola", Designer: "Uwe Rosenberg", Owner: "mallionaire", ReviewBody: "Farmyard fun!", Category: "euro game", CreatedAt: ts("2021-01-18 10:00:20"), Votes: 1, ReviewImgURL: img},
			{Title: "Jenga", Designer: "Leslie Scott", Owner: "philippaclaire9", ReviewBody: "Fiddly fun for all the family", Category: "dexterity", CreatedAt: ts("2021-01-18 10:01:41"), Votes: 5, ReviewImgURL: img},
			{Title: "Ultimate Werewolf", Designer: "Akihisa Okui", Owner: "bainesface", ReviewBody: "We couldn't find the werewolf!", Category: "social deduction", CreatedAt: ts("2021-01-18 10:01:41"), Votes: 5, ReviewImgURL: img},
			{Title: "Dolor reprehenderit", Designer: "Gamey McGameface", Owner: "mallionaire", ReviewBody: loremBody, Category: "social deduction", CreatedAt: ts("2021-01-22 11:35:50"), Votes: 7, ReviewImgURL: img},
			{Title: "Proident tempor et.", Designer: "Seymour Buttz", Owner: "mallionaire", ReviewBody: loremBody, Category: "social deduction", CreatedAt: ts("2021-01-07 09:06:08"), Votes: 5, ReviewImgURL: img},
			{Title: "Occaecat consequat officia in quis commodo.", Designer: "Ollie Tabooger", Owner: "mallionaire", ReviewBody: loremBody, Category: "social deduction", CreatedAt: ts("2020-09-13 14:19:28"), Votes: 8, ReviewImgURL: img},
			{Title: "Mollit elit qui incididunt veniam occaecat cupidatat", Designer: "Avery Wunzboogerz", Owner: "mallionaire", ReviewBody: loremBody, Category: "social deduction", CreatedAt: ts("2021-01-25 11:16:54"), Votes: 9, ReviewImgURL: img},
			{Title: "One Night Ultimate Werewolf", Designer: "Akihisa Okui", Owner: "mallionaire", ReviewBody: "We couldn't find the werewolf!", Category: "social deduction", CreatedAt: ts("2021-01-18 10:01:41"), Votes: 5, ReviewImgURL: img},
			{Title: "A truly Quacking Game; Quacks of Quedlinburg", Designer: "Wolfgang Warsch", Owner: "mallionaire", ReviewBody: "Ever wish you could play a game of chance that rewards you for your luck?", Category: "social deduction", CreatedAt: ts("2021-01-18 10:01:41"), Votes: 10, ReviewImgURL: img},
			{Title: "Build you own tour de Yorkshire", Designer: "Asger Harding Granerud", Owner: "mallionaire", ReviewBody: "Cold rain pours on the faces of your team of cyclists.", Category: "social deduction", CreatedAt: ts("2021-01-18 10:01:41"), Votes: 10, ReviewImgURL: img},
			{Title: "That's just what an evil person would say!", Designer: "Fiona Lohoar", Owner: "mallionaire", ReviewBody: "If you've ever wanted to accuse your siblings of being evil, now you can.", Category: "social deduction", CreatedAt: ts("2021-01-18 10:01:41"), Votes: 8, ReviewImgURL: img},
			{Title: "Scythe; you're gonna need a bigger table!", Designer: "Jamey Stegmaier", Owner: "mallionaire", ReviewBody: "Spend 30 minutes just setting up all of the boards.", Category: "social deduction", CreatedAt: ts("2021-01-22 10:37:04"), Votes: 100, ReviewImgURL: img},
			{Title: "Settlers of Catan: Don't Settle For Less", Designer: "Klaus Teuber", Owner: "mallionaire", ReviewBody: "You have stumbled across an uncharted island rich in natural resources.", Category: "social deduction", CreatedAt: ts("1970-01-10 02:08:38"), Votes: 16, ReviewImgURL: img},
		},
		Comments: []models.Comment{
			{Body: "I loved this game too!", Votes: 16, Author: "bainesface", ReviewID: 2, CreatedAt: ts("2017-11-22 12:43:33")},
			{Body: "My dog loved this game too!", Votes: 13, Author: "mallionaire", ReviewID: 3, CreatedAt: ts("2021-01-18 10:09:05")},
			{Body: "I didn't know dogs could play games", Votes: 10, Author: "philippaclaire9", ReviewID: 3, CreatedAt: ts("2021-01-18 10:09:48")},
			{Body: "EPIC board game!", Votes: 16, Author: "bainesface", ReviewID: 2, CreatedAt: ts("2017-11-22 12:36:03")},
			{Body: "Now this is a story all about how, board games turned my life upside down", Votes: 13, Author: "mallionaire", ReviewID: 2, CreatedAt: ts("2021-01-18 10:24:05")},
			{Body: "Not sure about dogs, but my cat likes to get involved with board games", Votes: 10, Author: "philippaclaire9", ReviewID: 3, CreatedAt: ts("2021-03-27 19:48:58")},
		},
	}
}
