package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"festivalcms/internal/delivery/http/controllers"
	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/delivery/http/middleware"
	"festivalcms/internal/domain"
)

// APIPrefix is the path prefix of every API route.
const APIPrefix = "/api/v1"

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Event       *controllers.EventController
	Auth        *controllers.AuthController
	User        *controllers.UserController
	Speaker     *controllers.SpeakerController
	Workshop    *controllers.WorkshopController
	Banner      *controllers.MediaController
	Brochure    *controllers.MediaController
	News        *controllers.NewsController
	VideoBlog   *controllers.VideoBlogController
	Archive     *controllers.ArchiveController
	Contact     *controllers.ContactController
	ViewCounter *controllers.ViewCounterController
}

// RouterConfig holds what NewRouter needs besides the controllers. Uploads, when set,
// serves locally stored files under /uploads/.
type RouterConfig struct {
	Logger   *slog.Logger
	Verifier domain.TokenVerifier
	Uploads  http.Handler
}

// NewRouter initializes the HTTP router with all application routes and wraps it with
// panic recovery and request logging.
func NewRouter(c Controllers, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	guard := middleware.Guard(cfg.Verifier, cfg.Logger)
	admin := domain.RoleAdmin
	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, h)
	}

	// Events, days and time slots
	handle("POST "+APIPrefix+"/event/addEvent", guard(c.Event.AddEvent, admin))
	handle("POST "+APIPrefix+"/event/updateEvent/{eventId}", guard(c.Event.UpdateEvent))
	handle("DELETE "+APIPrefix+"/event/deleteEvent/{eventId}", guard(c.Event.DeleteEvent, admin))
	handle("GET "+APIPrefix+"/event/getEvent", guard(c.Event.GetEvents))
	handle("GET "+APIPrefix+"/event/totalEvent", c.Event.GetSchedule)
	handle("GET "+APIPrefix+"/event/getFullEvent", c.Event.GetSchedule)
	handle("GET "+APIPrefix+"/event/getEventDay", guard(c.Event.GetEventDays))
	handle("POST "+APIPrefix+"/event/updateEventDay/{eventDayId}", guard(c.Event.UpdateEventDay))
	handle("POST "+APIPrefix+"/event/addTime/{eventId}/day/{eventDayId}", guard(c.Event.AddTime, admin))
	handle("POST "+APIPrefix+"/event/updateTime/day/{dayId}/time/{timeId}", guard(c.Event.UpdateTime))
	handle("DELETE "+APIPrefix+"/event/deleteTime/{timeId}", guard(c.Event.DeleteTime, admin))
	handle("GET "+APIPrefix+"/event/getTime", guard(c.Event.GetTime))
	handle("GET "+APIPrefix+"/event/generatePdf", c.Event.GeneratePDF)
	handle("GET "+APIPrefix+"/event/calendar.ics", c.Event.Calendar)

	// Brochures
	handle("POST "+APIPrefix+"/event/addPdf", guard(c.Brochure.Add, admin))
	handle("GET "+APIPrefix+"/event/getEventBroucher", c.Brochure.List)
	handle("POST "+APIPrefix+"/event/updateEventBroucher/{id}", guard(c.Brochure.Replace))
	handle("DELETE "+APIPrefix+"/event/deleteEventBroucher/{id}", guard(c.Brochure.Delete, admin))

	// Auth and users
	handle("POST "+APIPrefix+"/onboarding/login", c.Auth.Login)
	handle("POST "+APIPrefix+"/onboarding/logout", c.Auth.Logout)
	handle("POST "+APIPrefix+"/onboarding/addUser", guard(c.User.AddUser, admin))
	handle("GET "+APIPrefix+"/onboarding/getUsers", guard(c.User.GetUsers, admin))
	handle("GET "+APIPrefix+"/onboarding/getMyProfile", guard(c.User.GetMyProfile))
	handle("PUT "+APIPrefix+"/onboarding/editUser/{userId}", guard(c.User.EditUser))
	handle("DELETE "+APIPrefix+"/onboarding/deleteUser/{userId}", guard(c.User.DeleteUser, admin))

	// Speakers
	handle("POST "+APIPrefix+"/speaker/addSpeaker/{eventId}", guard(c.Speaker.AddSpeaker, admin))
	handle("GET "+APIPrefix+"/speaker/getSpeaker", c.Speaker.GetSpeakers)
	handle("POST "+APIPrefix+"/speaker/updateSpeaker/{speakerId}", guard(c.Speaker.UpdateSpeaker))
	handle("DELETE "+APIPrefix+"/speaker/deleteSpeaker/{speakerId}", guard(c.Speaker.DeleteSpeaker, admin))

	// Workshops
	handle("POST "+APIPrefix+"/registration/addRegistration/{eventId}", guard(c.Workshop.AddWorkshop, admin))
	handle("GET "+APIPrefix+"/registration/getRegistration", c.Workshop.GetWorkshops)
	handle("POST "+APIPrefix+"/registration/updateRegistration/{workshopId}", guard(c.Workshop.UpdateWorkshop))
	handle("DELETE "+APIPrefix+"/registration/deleteRegistration/{workshopId}", guard(c.Workshop.DeleteWorkshop, admin))

	// Banners
	handle("POST "+APIPrefix+"/homePage/addBanner", guard(c.Banner.Add, admin))
	handle("GET "+APIPrefix+"/homePage/getBanner", c.Banner.List)
	handle("POST "+APIPrefix+"/homePage/updateBanner/{id}", guard(c.Banner.Replace))
	handle("DELETE "+APIPrefix+"/homePage/deleteBanner/{id}", guard(c.Banner.Delete, admin))

	// News and blog
	handle("POST "+APIPrefix+"/newsAndBlog/addNewsAndBlog", guard(c.News.AddPost, admin))
	handle("GET "+APIPrefix+"/newsAndBlog/getNewsAndBlog", c.News.ListPosts)
	handle("GET "+APIPrefix+"/newsAndBlog/getNewsAndBlogById/{id}", guard(c.News.GetPost))
	handle("GET "+APIPrefix+"/newsAndBlog/getBlogById/{id}", c.News.GetBlog)
	handle("POST "+APIPrefix+"/newsAndBlog/updateNewsAndBlog/{id}", guard(c.News.UpdatePost))
	handle("DELETE "+APIPrefix+"/newsAndBlog/deleteNewsAndBlog/{id}", guard(c.News.DeletePost, admin))
	handle("POST "+APIPrefix+"/newsAndBlog/addCategory", guard(c.News.AddCategory, admin))
	handle("GET "+APIPrefix+"/newsAndBlog/getCategory", c.News.ListCategories)

	// Video blog
	handle("POST "+APIPrefix+"/videoBlog/addVideoBlog", guard(c.VideoBlog.AddVideo, admin))
	handle("GET "+APIPrefix+"/videoBlog/getVideoBlog", c.VideoBlog.ListVideos)
	handle("GET "+APIPrefix+"/videoBlog/getYoutubeVideo", c.VideoBlog.ListYoutube)
	handle("GET "+APIPrefix+"/videoBlog/getRawVideo", c.VideoBlog.ListRaw)
	handle("GET "+APIPrefix+"/videoBlog/getRawVideoById/{videoId}", c.VideoBlog.GetRawVideo)
	handle("GET "+APIPrefix+"/videoBlog/getVideoById/{videoId}", c.VideoBlog.GetVideo)
	handle("POST "+APIPrefix+"/videoBlog/updateVideo/{videoId}", guard(c.VideoBlog.UpdateVideo))
	handle("DELETE "+APIPrefix+"/videoBlog/deleteVideo/{videoId}", guard(c.VideoBlog.DeleteVideo, admin))

	// Archive
	handle("POST "+APIPrefix+"/archive/addYear", guard(c.Archive.AddYear, admin))
	handle("GET "+APIPrefix+"/archive/getYear", c.Archive.ListYears)
	handle("DELETE "+APIPrefix+"/archive/deleteYear/{yearId}", guard(c.Archive.DeleteYear, admin))
	handle("POST "+APIPrefix+"/archive/uploadImages/{yearId}", guard(c.Archive.UploadImages, admin))
	handle("GET "+APIPrefix+"/archive/getImages", c.Archive.ListImages)
	handle("DELETE "+APIPrefix+"/archive/deleteImage/{imageId}", guard(c.Archive.DeleteImage, admin))

	// Contact form
	handle("POST "+APIPrefix+"/sendMail/contactUsMail", c.Contact.ContactUs)
	handle("POST "+APIPrefix+"/sendMail/addsenderMail", guard(c.Contact.AddSender, admin))
	handle("GET "+APIPrefix+"/sendMail/getSenderMail", guard(c.Contact.ListSenders))
	handle("POST "+APIPrefix+"/sendMail/updateSenderMail/{mailId}", guard(c.Contact.UpdateSender))
	handle("DELETE "+APIPrefix+"/sendMail/deleteSenderMail/{mailId}", guard(c.Contact.DeleteSender, admin))

	// Views
	handle("GET "+APIPrefix+"/{$}", c.ViewCounter.Track)
	handle("GET "+APIPrefix+"/getView", guard(c.ViewCounter.ListViews))

	handle("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, controllers.MessageResponse{Message: "ok"})
	})
	if cfg.Uploads != nil {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", cfg.Uploads))
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.LoggingMiddleware(cfg.Logger, middleware.Recoverer(cfg.Logger, mux))
}
