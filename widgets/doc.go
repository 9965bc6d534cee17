// Package widgets holds the stock widgets built on buffer and layout.
//
// Block draws borders and a title around an area and reports the inner area
// left for content. Paragraph, Gauge and Tabs render into that inner area.
// List and Scrollbar are stateful: the caller keeps a ListState or
// ScrollbarState between frames and the widget adjusts it while rendering.
// Clear resets an area so popups can draw over earlier content.
package widgets
